package particles

import (
	"fmt"

	"beam/maths"
)

// RefPart 参考粒子（设计粒子）记录
// 定义名义能量/动量，系综内所有粒子的坐标均为相对设计值的偏差
type RefPart[T maths.Float] struct {
	S  T // 参考粒子沿束线的路径长度 [m]
	Pt T // 设计纵向动量标量 pt/mc² = -γ（设计洛伦兹因子取负）
}

// Gamma 返回设计洛伦兹因子 γ = -pt
func (r RefPart[T]) Gamma() T {
	return -r.Pt
}

// BetaGamma 返回设计值 pz/mc = βγ = √(pt²-1)
func (r RefPart[T]) BetaGamma() T {
	return maths.Sqrt(r.Pt*r.Pt - 1)
}

// Beta 返回设计速度比 β = βγ/γ
func (r RefPart[T]) Beta() T {
	return r.BetaGamma() / r.Gamma()
}

// Validate 校验参考粒子状态
// 要求 |pt| > 1，否则 βγ 无实数解，坐标变换不可用
func (r RefPart[T]) Validate() error {
	if !(r.Pt*r.Pt > 1) {
		return fmt.Errorf("reference particle pt=%v: |pt| must exceed 1", float64(r.Pt))
	}
	return nil
}

// SetGamma 按洛伦兹因子设置设计动量（γ > 1）
func (r *RefPart[T]) SetGamma(gamma T) error {
	if gamma <= 1 {
		return fmt.Errorf("reference particle gamma=%v: must exceed 1", float64(gamma))
	}
	r.Pt = -gamma
	return nil
}
