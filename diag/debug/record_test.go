package debug

import (
	"bytes"
	"strings"
	"testing"

	"beam/particles"
)

// testBeam 生成测试用高斯束流
func testBeam() *particles.Container[float64] {
	ref := particles.RefPart[float64]{Pt: -2}
	params := particles.GaussianParams[float64]{
		SigmaX: 1e-3, SigmaPx: 1e-4,
		SigmaY: 2e-3, SigmaPy: 2e-4,
		SigmaT: 3e-3, SigmaPt: 3e-4,
	}
	return particles.NewGaussianBeam(ref, params, 2000, 99, 0)
}

// TestRecordUpdate 验证诊断记录的追加与JSON输出
func TestRecordUpdate(t *testing.T) {
	var list Record
	pc := testBeam()
	if err := Update(&list, pc); err != nil {
		t.Fatalf("记录更新失败: %v", err)
	}
	ref := pc.Ref()
	ref.S = 1.5
	pc.SetRef(ref)
	if err := Update(&list, pc); err != nil {
		t.Fatalf("记录更新失败: %v", err)
	}

	if list.Len() != 2 {
		t.Fatalf("记录条数不正确: 期望 2, 实际 %d", list.Len())
	}
	if list.S[1] != 1.5 {
		t.Errorf("路径长度不正确: 期望 1.5, 实际 %v", list.S[1])
	}
	if list.I2[0] <= 0 {
		t.Errorf("I2应为正: %v", list.I2[0])
	}

	var buf bytes.Buffer
	if err := list.Render(&buf); err != nil {
		t.Fatalf("JSON输出失败: %v", err)
	}
	if !strings.Contains(buf.String(), "\"I2\"") {
		t.Error("JSON输出应包含I2字段")
	}
}

// TestChartsRender 验证曲线页面渲染产出HTML
func TestChartsRender(t *testing.T) {
	c := &Charts{}
	c.Append(0, 1e-11, 1e-22, 1e-33, 2e-6, 3e-6, 4e-6, false)
	c.Append(1, 1e-11, 1e-22, 1e-33, 2e-6, 3e-6, 4e-6, false)

	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatalf("页面渲染失败: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, "<html>") && !strings.Contains(html, "<!DOCTYPE html>") {
		t.Error("渲染结果应为HTML页面")
	}
	if !strings.Contains(html, "e1") {
		t.Error("页面应包含发射度序列")
	}
}
