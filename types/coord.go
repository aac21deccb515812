package types

// CoordSystem 纵向相空间参数化坐标系标记
// 整个粒子系综共享同一个标记，同一时刻只有一种坐标系下的字段有效
type CoordSystem int

// 坐标系常量定义
const (
	CoordUnknown CoordSystem = iota // 未知坐标系
	CoordS                          // 固定s坐标系（以路径长度为自变量）
	CoordT                          // 固定t坐标系（以时间为自变量）
)

// coordSystemString 坐标系名称映射
var coordSystemString = map[CoordSystem]string{
	CoordUnknown: "Unknown",
	CoordS:       "s",
	CoordT:       "t",
}

// String 返回坐标系的字符串表示
func (c CoordSystem) String() string {
	if name, ok := coordSystemString[c]; ok {
		return name
	}
	return "Unknown"
}

// IsValid 判断是否为有效坐标系
func (c CoordSystem) IsValid() bool {
	return c == CoordS || c == CoordT
}
