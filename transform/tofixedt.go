package transform

import "beam/maths"

// ToFixedT 固定s到固定t参数化的逐粒子变换
// ToFixedS 的精确逆映射（往返到浮点舍入精度），保持辛结构，
// 横向正则对在此参考系下保持不变：
//
//	t  = -z/βd
//	pt = -βd·pz
//
// 纯值变换，无跨粒子依赖，可被任意并行调度无同步执行
type ToFixedT[T maths.Float] struct {
	betad T // 设计速度比 βd
}

// NewToFixedT 按设计纵向动量 ptd = pt/mc² = -γ 构造变换
func NewToFixedT[T maths.Float](ptd T) ToFixedT[T] {
	gammad := -ptd
	pzd := maths.Sqrt(ptd*ptd - 1)
	return ToFixedT[T]{betad: pzd / gammad}
}

// Apply 就地变换单个粒子的六个字段
// 入参语义为固定s坐标系 (x, y, z, px, py, pz)，
// 返回后纵向槽位变为固定t坐标系的 (t, pt)
func (m ToFixedT[T]) Apply(x, y, z, px, py, pz *T) {
	t := -*z / m.betad
	pt := -m.betad * *pz
	*z = t
	*pz = pt
}
