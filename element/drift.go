package element

import (
	"fmt"

	"beam/maths"
	"beam/particles"
	"beam/types"
)

// Drift 漂移段元件
// 在固定s坐标系下将粒子横向推进 ds，纵向坐标在线性化近似下保持不变
type Drift[T maths.Float] struct {
	name string
	ds   T // 漂移长度 [m]
}

// NewDrift 创建漂移段
func NewDrift[T maths.Float](name string, ds T) *Drift[T] {
	return &Drift[T]{name: name, ds: ds}
}

// Name 返回元件名称
func (d *Drift[T]) Name() string { return d.name }

// Length 返回元件长度
func (d *Drift[T]) Length() T { return d.ds }

// Thin 漂移段非零长度
func (d *Drift[T]) Thin() bool { return false }

// Push 推进系综全部粒子
// 前置条件：系综必须处于固定s坐标系
func (d *Drift[T]) Push(pc *particles.Container[T]) error {
	if pc.CoordSystem() != types.CoordS {
		return fmt.Errorf("drift %q: ensemble must be in fixed s coordinates, have %s",
			d.name, pc.CoordSystem())
	}
	ref := pc.Ref()
	if err := ref.Validate(); err != nil {
		return fmt.Errorf("drift %q: %w", d.name, err)
	}
	pzd := ref.BetaGamma()

	for _, part := range pc.Partitions() {
		x := part.Field(types.FieldX)
		y := part.Field(types.FieldY)
		px := part.Field(types.FieldPx)
		py := part.Field(types.FieldPy)
		pz := part.Field(types.FieldPz)
		for i, sz := 0, part.Size(); i < sz; i++ {
			// 横向斜率按粒子自身纵向动量计算
			slope := d.ds / (pzd + pz[i])
			x[i] += slope * px[i]
			y[i] += slope * py[i]
		}
	}

	// 参考粒子路径长度随元件推进
	ref.S += d.ds
	pc.SetRef(ref)
	return nil
}
