package beam

import (
	"math"
	"strings"
	"testing"

	"beam/diag"
	"beam/particles"
	"beam/transform"
	"beam/types"
)

// testBeam 生成测试用固定t高斯束流
func testBeam(n int, seed int64) *particles.Container[float64] {
	ref := particles.RefPart[float64]{Pt: -2}
	params := particles.GaussianParams[float64]{
		SigmaX: 1e-3, SigmaPx: 1e-4,
		SigmaY: 2e-3, SigmaPy: 2e-4,
		SigmaT: 3e-3, SigmaPt: 3e-4,
	}
	return particles.NewGaussianBeam(ref, params, n, seed, 512)
}

// TestDiagnose 验证诊断汇总：无耦合高斯束流的发射度为正且
// 本征发射度接近投影发射度
func TestDiagnose(t *testing.T) {
	pc := testBeam(10000, 5)
	sum, err := Diagnose(pc)
	if err != nil {
		t.Fatalf("诊断失败: %v", err)
	}
	if sum.Degraded {
		t.Error("高斯束流诊断不应退化")
	}
	if sum.I2 <= 0 {
		t.Errorf("I2应为正: %v", sum.I2)
	}
	for _, e := range []float64{sum.E1, sum.E2, sum.E3, sum.Ex, sum.Ey, sum.Et} {
		if e <= 0 {
			t.Errorf("发射度应为正: %+v", sum)
		}
	}
	// 无耦合束流：本征发射度集合与投影发射度集合一致
	// 有限样本的跨平面残余相关使两者偏差约为 O(1/√n)，
	// n=10000 时取相对容差1e-2
	eig := []float64{sum.E1, sum.E2, sum.E3}
	proj := []float64{sum.Ex, sum.Ey, sum.Et}
	for _, p := range proj {
		found := false
		for _, e := range eig {
			if math.Abs(e-p) < 1e-2*p {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("投影发射度 %v 未在本征发射度中找到: %+v", p, sum)
		}
	}
	if !strings.Contains(sum.String(), "I2=") {
		t.Error("汇总输出格式不正确")
	}
}

// TestDiagnoseSigmaUncoupled 验证解析构造的无耦合协方差矩阵下
// 本征发射度与投影发射度严格一致（不受采样涨落影响）
func TestDiagnoseSigmaUncoupled(t *testing.T) {
	const tol = 1e-9
	var dense [6][6]float64
	sigmas := [6]float64{1e-3, 1e-4, 2e-3, 2e-4, 3e-3, 3e-4}
	for i, s := range sigmas {
		dense[i][i] = s * s
	}
	sum := DiagnoseSigma(diag.FromDense(dense))
	if sum.Degraded {
		t.Error("无耦合矩阵诊断不应退化")
	}
	// εx = σx·σpx 等
	want := []float64{1e-7, 4e-7, 9e-7}
	eig := []float64{sum.E1, sum.E2, sum.E3}
	proj := []float64{sum.Ex, sum.Ey, sum.Et}
	for _, w := range want {
		for name, set := range map[string][]float64{"本征": eig, "投影": proj} {
			found := false
			for _, e := range set {
				if math.Abs(e-w) < tol*w {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("%s发射度中未找到 %v: %+v", name, w, sum)
			}
		}
	}
}

// TestInvariantsUnderConversion 验证坐标变换（线性辛映射）前后
// 矩不变量保持不变
func TestInvariantsUnderConversion(t *testing.T) {
	const tol = 1e-9
	pc := testBeam(5000, 17)
	sumT, err := Diagnose(pc)
	if err != nil {
		t.Fatalf("诊断失败: %v", err)
	}
	if err := transform.Convert(pc, types.CoordS); err != nil {
		t.Fatalf("坐标变换失败: %v", err)
	}
	sumS, err := Diagnose(pc)
	if err != nil {
		t.Fatalf("诊断失败: %v", err)
	}
	if math.Abs(sumS.I2-sumT.I2) > tol*sumT.I2 {
		t.Errorf("I2在辛变换下应不变: %v → %v", sumT.I2, sumS.I2)
	}
	if math.Abs(sumS.I4-sumT.I4) > tol*sumT.I4 {
		t.Errorf("I4在辛变换下应不变: %v → %v", sumT.I4, sumS.I4)
	}
	if math.Abs(sumS.I6-sumT.I6) > tol*sumT.I6 {
		t.Errorf("I6在辛变换下应不变: %v → %v", sumT.I6, sumS.I6)
	}
}

// TestRoundTripResidual 验证往返残差接近机器精度
func TestRoundTripResidual(t *testing.T) {
	pc := testBeam(2000, 23)
	res, err := RoundTrip(pc)
	if err != nil {
		t.Fatalf("往返变换失败: %v", err)
	}
	if res > 1e-12 {
		t.Errorf("往返残差过大: %v", res)
	}
	if pc.CoordSystem() != types.CoordT {
		t.Errorf("往返后坐标系应恢复: %s", pc.CoordSystem())
	}
}
