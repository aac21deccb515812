package transform

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"beam/maths"
	"beam/particles"
	"beam/types"
)

// Convert 在固定s与固定t参数化之间转换整个粒子系综
// 就地修改各分区的字段数据并更新系综坐标系标记；
// 粒子数量与顺序保持不变（值变换，非过滤）
//
// 前置条件（违反时返回错误且不产生任何修改）：
//   - direction 必须是有效坐标系且不等于当前坐标系
//   - 参考粒子必须满足 |pt| > 1
//
// 分区之间无共享可变状态，按工作协程并行处理；
// 调用期间参考粒子记录不得被并发修改（多读无写约束由调用方保证）
func Convert[T maths.Float](pc *particles.Container[T], direction types.CoordSystem) error {
	if !direction.IsValid() {
		return fmt.Errorf("convert: invalid target coordinate system %d", direction)
	}
	if pc.CoordSystem() == direction {
		return fmt.Errorf("convert: already in fixed %s coordinates", direction)
	}

	// 参考粒子数据：pd 为 pt/mc² 的设计值 = -γ
	ref := pc.Ref()
	if err := ref.Validate(); err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	pd := ref.Pt

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	if direction == types.CoordS {
		// pz/mc 的设计值 = βγ
		pzd := maths.Sqrt(pd*pd - 1)
		toS := NewToFixedS(pzd)
		for _, part := range pc.Partitions() {
			part := part
			g.Go(func() error {
				x := part.Field(types.FieldX)
				y := part.Field(types.FieldY)
				t := part.Field(types.FieldT)
				px := part.Field(types.FieldPx)
				py := part.Field(types.FieldPy)
				pt := part.Field(types.FieldPt)
				for i, sz := 0, part.Size(); i < sz; i++ {
					toS.Apply(&x[i], &y[i], &t[i], &px[i], &py[i], &pt[i])
				}
				return nil
			})
		}
	} else {
		// pt/mc² 的设计值 = -γ
		toT := NewToFixedT(pd)
		for _, part := range pc.Partitions() {
			part := part
			g.Go(func() error {
				x := part.Field(types.FieldX)
				y := part.Field(types.FieldY)
				z := part.Field(types.FieldZ)
				px := part.Field(types.FieldPx)
				py := part.Field(types.FieldPy)
				pz := part.Field(types.FieldPz)
				for i, sz := 0, part.Size(); i < sz; i++ {
					toT.Apply(&x[i], &y[i], &z[i], &px[i], &py[i], &pz[i])
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// 更新系综坐标系元数据
	pc.SetCoordSystem(direction)
	return nil
}
