package types

// Field 粒子SoA实数字段索引
// 纵向坐标槽位在两种坐标系间复用：固定t坐标系下存储(t,pt)，
// 固定s坐标系下同一槽位存储(z,pz)
type Field int

// 字段索引常量定义
const (
	FieldX  Field = iota // 横向位置 x [m]
	FieldY               // 横向位置 y [m]
	FieldT               // 纵向位置 t（固定t坐标系）
	FieldPx              // 横向动量 px/mc
	FieldPy              // 横向动量 py/mc
	FieldPt              // 纵向动量 pt/mc²（固定t坐标系）
	FieldNum             // 字段总数
)

// 固定s坐标系下的纵向槽位别名
const (
	FieldZ  = FieldT  // 纵向位置 z [m]
	FieldPz = FieldPt // 纵向动量 pz/mc
)

// fieldString 字段名称映射
var fieldString = map[Field]string{
	FieldX:  "x",
	FieldY:  "y",
	FieldT:  "t",
	FieldPx: "px",
	FieldPy: "py",
	FieldPt: "pt",
}

// String 返回字段的字符串表示
func (f Field) String() string {
	if name, ok := fieldString[f]; ok {
		return name
	}
	return "Unknown"
}
