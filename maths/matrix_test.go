package maths

import (
	"math"
	"testing"
)

// TestSymplecticJ 验证单位辛形式矩阵的基本性质 J² = -I
func TestSymplecticJ(t *testing.T) {
	j := SymplecticJ[float64]()
	j2 := j.Mul(j)
	for i := 0; i < Dim6; i++ {
		for k := 0; k < Dim6; k++ {
			expected := 0.0
			if i == k {
				expected = -1.0
			}
			if math.Abs(j2.At(i, k)-expected) > 1e-15 {
				t.Errorf("J²[%d][%d]不正确: 期望 %v, 实际 %v", i, k, expected, j2.At(i, k))
			}
		}
	}
	if math.Abs(j2.Trace()+6) > 1e-15 {
		t.Errorf("J²的迹不正确: 期望 -6, 实际 %v", j2.Trace())
	}
}

// TestMatrix6Mul 验证矩阵乘法与迹
func TestMatrix6Mul(t *testing.T) {
	a := NewMatrix6[float64]()
	b := NewMatrix6[float64]()
	// 对角矩阵乘法：迹为对角元素乘积之和
	var expected float64
	for i := 0; i < Dim6; i++ {
		a.Set(i, i, float64(i+1))
		b.Set(i, i, 2.0)
		expected += float64(i+1) * 2.0
	}
	c := a.Mul(b)
	if math.Abs(c.Trace()-expected) > 1e-15 {
		t.Errorf("迹不正确: 期望 %v, 实际 %v", expected, c.Trace())
	}
}

// TestMatrix6OutOfRange 验证越界访问panic
func TestMatrix6OutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("越界访问应panic")
		}
	}()
	m := NewMatrix6[float64]()
	m.At(6, 0)
}
