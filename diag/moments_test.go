package diag

import (
	"math"
	"testing"

	"beam/particles"
	"beam/types"
)

// TestMomentsHandComputed 验证小样本矩归约与手工计算一致（样本协方差，1/(n-1)）
func TestMomentsHandComputed(t *testing.T) {
	const tol = 1e-12
	ref := particles.RefPart[float64]{Pt: -2}
	pc := particles.NewContainer(types.CoordT, ref, 2) // 跨两个分区
	xs := []float64{1, -1, 2, -2}
	pxs := []float64{0.1, -0.1, 0.2, -0.2}
	for i := range xs {
		pc.AddParticle([types.FieldNum]float64{
			types.FieldX:  xs[i],
			types.FieldPx: pxs[i],
		})
	}

	sigma, err := Moments(pc)
	if err != nil {
		t.Fatalf("矩归约失败: %v", err)
	}
	// 均值为0：Σxx = (1+1+4+4)/3，Σx,px = (0.1+0.1+0.4+0.4)/3
	if got, want := sigma.At(0, 0), 10.0/3.0; math.Abs(got-want) > tol {
		t.Errorf("Σxx不正确: 期望 %v, 实际 %v", want, got)
	}
	if got, want := sigma.At(0, 1), 1.0/3.0; math.Abs(got-want) > tol {
		t.Errorf("Σx,px不正确: 期望 %v, 实际 %v", want, got)
	}
	// 对称性
	if sigma.At(1, 0) != sigma.At(0, 1) {
		t.Error("协方差矩阵应对称")
	}
	// 未赋值的平面为零
	if sigma.At(2, 2) != 0 || sigma.At(4, 4) != 0 {
		t.Error("未赋值坐标的矩应为零")
	}
}

// TestMomentsGaussianBeam 验证高斯束流的矩归约接近给定rms宽度
// 并给出正的本征发射度
func TestMomentsGaussianBeam(t *testing.T) {
	ref := particles.RefPart[float64]{Pt: -2}
	params := particles.GaussianParams[float64]{
		SigmaX: 1e-3, SigmaPx: 1e-4,
		SigmaY: 2e-3, SigmaPy: 2e-4,
		SigmaT: 3e-3, SigmaPt: 3e-4,
	}
	pc := particles.NewGaussianBeam(ref, params, 20000, 1234, 0)

	sigma, err := Moments(pc)
	if err != nil {
		t.Fatalf("矩归约失败: %v", err)
	}
	// 对角元素接近σ²（2万样本，放宽到±10%）
	checks := map[int]float64{
		0: 1e-6, 1: 1e-8,
		2: 4e-6, 3: 4e-8,
		4: 9e-6, 5: 9e-8,
	}
	for idx, want := range checks {
		got := sigma.At(idx, idx)
		if math.Abs(got-want) > 0.1*want {
			t.Errorf("Σ[%d][%d]偏差过大: 期望约 %v, 实际 %v", idx, idx, want, got)
		}
	}

	e1, e2, e3, degraded := Eigenemittances(sigma)
	if degraded {
		t.Error("高斯束流的本征发射度不应退化")
	}
	for i, e := range []float64{e1, e2, e3} {
		if e <= 0 {
			t.Errorf("本征发射度[%d]应为正: %v", i, e)
		}
	}
}

// TestMomentsLostExcluded 验证丢失标记粒子不参与矩统计
func TestMomentsLostExcluded(t *testing.T) {
	ref := particles.RefPart[float64]{Pt: -2}
	pc := particles.NewContainer(types.CoordT, ref, 0)
	for _, x := range []float64{1, -1, 100} {
		pc.AddParticle([types.FieldNum]float64{types.FieldX: x})
	}
	// 标记离群粒子丢失
	pc.Partitions()[0].MarkLost(2)

	sigma, err := Moments(pc)
	if err != nil {
		t.Fatalf("矩归约失败: %v", err)
	}
	// 剩余样本 {1,-1}：均值0，样本方差 2/(2-1) = 2
	if got, want := sigma.At(0, 0), 2.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("Σxx不正确: 期望 %v, 实际 %v", want, got)
	}
}

// TestMomentsTooFew 验证样本不足时返回错误
func TestMomentsTooFew(t *testing.T) {
	ref := particles.RefPart[float64]{Pt: -2}
	pc := particles.NewContainer(types.CoordT, ref, 0)
	pc.AddParticle([types.FieldNum]float64{})
	if _, err := Moments(pc); err == nil {
		t.Error("样本不足应返回错误")
	}
}

// TestMeans 验证均值统计
func TestMeans(t *testing.T) {
	ref := particles.RefPart[float64]{Pt: -2}
	pc := particles.NewContainer(types.CoordT, ref, 0)
	pc.AddParticle([types.FieldNum]float64{types.FieldX: 1, types.FieldPt: 4})
	pc.AddParticle([types.FieldNum]float64{types.FieldX: 3, types.FieldPt: -2})
	means := Means(pc)
	if math.Abs(means[0]-2) > 1e-15 { // x 均值
		t.Errorf("x均值不正确: 期望 2, 实际 %v", means[0])
	}
	if math.Abs(means[5]-1) > 1e-15 { // pt 均值
		t.Errorf("pt均值不正确: 期望 1, 实际 %v", means[5])
	}
}
