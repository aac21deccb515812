package beam

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"beam/diag"
	"beam/maths"
	"beam/particles"
	"beam/transform"
	"beam/types"
)

// Summary 一次束流诊断的汇总结果
type Summary struct {
	I2, I4, I6 float64 // 辛矩不变量
	E1, E2, E3 float64 // 本征发射度
	Ex, Ey, Et float64 // 各平面投影rms发射度
	Degraded   bool    // 低置信度标记（求根判别式越界）
}

// String 格式化字符串输出
func (s Summary) String() string {
	return fmt.Sprintf(
		"I2=%.6e I4=%.6e I6=%.6e\ne1=%.6e e2=%.6e e3=%.6e\nex=%.6e ey=%.6e et=%.6e\ndegraded=%v",
		s.I2, s.I4, s.I6, s.E1, s.E2, s.E3, s.Ex, s.Ey, s.Et, s.Degraded)
}

// Diagnose 对粒子系综做一次完整诊断：
// 矩归约 → 矩不变量 → 本征发射度与投影发射度
func Diagnose[T maths.Float](pc *particles.Container[T]) (Summary, error) {
	sigma, err := diag.Moments(pc)
	if err != nil {
		return Summary{}, err
	}
	return DiagnoseSigma(sigma), nil
}

// DiagnoseSigma 从已有协方差矩阵计算诊断汇总
func DiagnoseSigma[T maths.Float](sigma *diag.CovMatrix[T]) Summary {
	i2, i4, i6 := diag.KineticInvariants(sigma)
	e1, e2, e3, degraded := diag.Eigenemittances(sigma)
	ex, ey, et := diag.ProjectedEmittances(sigma)
	return Summary{
		I2: float64(i2), I4: float64(i4), I6: float64(i6),
		E1: float64(e1), E2: float64(e2), E3: float64(e3),
		Ex: float64(ex), Ey: float64(ey), Et: float64(et),
		Degraded: degraded,
	}
}

// RoundTrip 执行一次坐标系往返变换并返回最大字段残差
// 系综处于固定t时执行 t→s→t，处于固定s时执行 s→t→s；
// 残差为各粒子各字段往返前后差值绝对值的最大值
func RoundTrip[T maths.Float](pc *particles.Container[T]) (float64, error) {
	first, second := types.CoordS, types.CoordT
	if pc.CoordSystem() == types.CoordS {
		first, second = types.CoordT, types.CoordS
	}

	n := pc.Size()
	before := make([]float64, 0, n*int(types.FieldNum))
	for i := 0; i < n; i++ {
		values := pc.At(i)
		for _, v := range values {
			before = append(before, float64(v))
		}
	}

	if err := transform.Convert(pc, first); err != nil {
		return 0, err
	}
	if err := transform.Convert(pc, second); err != nil {
		return 0, err
	}

	residuals := make([]float64, 0, len(before))
	k := 0
	for i := 0; i < n; i++ {
		values := pc.At(i)
		for _, v := range values {
			residuals = append(residuals, math.Abs(float64(v)-before[k]))
			k++
		}
	}
	if len(residuals) == 0 {
		return 0, nil
	}
	return floats.Max(residuals), nil
}
