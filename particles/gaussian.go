package particles

import (
	"math/rand"

	"beam/maths"
	"beam/types"
)

// GaussianParams 高斯束流初始化参数
// 三个平面互不耦合，各自给定位置与动量的rms宽度
type GaussianParams[T maths.Float] struct {
	SigmaX, SigmaPx T // 水平面 rms 宽度
	SigmaY, SigmaPy T // 垂直面 rms 宽度
	SigmaT, SigmaPt T // 纵向 rms 宽度
}

// NewGaussianBeam 生成固定t坐标系下的无耦合高斯束流
// 使用给定种子保证可复现；粒子数 n，分区容量 boxSize（≤0取默认值）
func NewGaussianBeam[T maths.Float](ref RefPart[T], params GaussianParams[T], n int, seed int64, boxSize int) *Container[T] {
	rng := rand.New(rand.NewSource(seed))
	c := NewContainer(types.CoordT, ref, boxSize)
	sigmas := [types.FieldNum]T{
		types.FieldX:  params.SigmaX,
		types.FieldY:  params.SigmaY,
		types.FieldT:  params.SigmaT,
		types.FieldPx: params.SigmaPx,
		types.FieldPy: params.SigmaPy,
		types.FieldPt: params.SigmaPt,
	}
	for i := 0; i < n; i++ {
		var values [types.FieldNum]T
		for f := range values {
			values[f] = sigmas[f] * T(rng.NormFloat64())
		}
		c.AddParticle(values)
	}
	return c
}
