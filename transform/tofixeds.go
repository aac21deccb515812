package transform

import "beam/maths"

// ToFixedS 固定t到固定s参数化的逐粒子变换
// 纵向漂移替换取线性化形式并保持辛结构，横向正则对在此参考系下保持不变：
//
//	z  = -βd·t
//	pz = -pt/βd
//
// 其中 βd = pzd/γd 为设计速度比
// 纯值变换，无跨粒子依赖，可被任意并行调度无同步执行
type ToFixedS[T maths.Float] struct {
	betad T // 设计速度比 βd
}

// NewToFixedS 按设计纵向动量 pzd = pz/mc = βγ 构造变换
func NewToFixedS[T maths.Float](pzd T) ToFixedS[T] {
	gammad := maths.Sqrt(1 + pzd*pzd)
	return ToFixedS[T]{betad: pzd / gammad}
}

// Apply 就地变换单个粒子的六个字段
// 入参语义为固定t坐标系 (x, y, t, px, py, pt)，
// 返回后纵向槽位变为固定s坐标系的 (z, pz)
func (m ToFixedS[T]) Apply(x, y, t, px, py, pt *T) {
	z := -m.betad * *t
	pz := -*pt / m.betad
	*t = z
	*pt = pz
}
