package maths

import (
	"fmt"
	"strings"
)

// Dim6 相空间维度（x, px, y, py, t, pt）
const Dim6 = 6

// Matrix6 6x6稠密实矩阵
// 相空间维度固定为6，底层使用定长数组按行存储
type Matrix6[T Float] struct {
	data [Dim6 * Dim6]T
}

// NewMatrix6 创建6x6零矩阵
func NewMatrix6[T Float]() *Matrix6[T] {
	return &Matrix6[T]{}
}

// check 索引越界检查（越界panic）
func (m *Matrix6[T]) check(row, col int) {
	if row < 0 || row >= Dim6 || col < 0 || col >= Dim6 {
		panic(fmt.Sprintf("matrix index out of range: (%d,%d)", row, col))
	}
}

// At 获取指定行列元素值（越界panic）
func (m *Matrix6[T]) At(row, col int) T {
	m.check(row, col)
	return m.data[row*Dim6+col]
}

// Set 设置矩阵元素值（越界panic）
func (m *Matrix6[T]) Set(row, col int, value T) {
	m.check(row, col)
	m.data[row*Dim6+col] = value
}

// Mul 矩阵乘法，返回 m·other 的新矩阵
func (m *Matrix6[T]) Mul(other *Matrix6[T]) *Matrix6[T] {
	out := NewMatrix6[T]()
	for i := 0; i < Dim6; i++ {
		for j := 0; j < Dim6; j++ {
			var sum T
			for k := 0; k < Dim6; k++ {
				sum += m.data[i*Dim6+k] * other.data[k*Dim6+j]
			}
			out.data[i*Dim6+j] = sum
		}
	}
	return out
}

// Trace 返回矩阵的迹
func (m *Matrix6[T]) Trace() T {
	var sum T
	for i := 0; i < Dim6; i++ {
		sum += m.data[i*Dim6+i]
	}
	return sum
}

// Copy 复制自身数据到目标矩阵
func (m *Matrix6[T]) Copy(target *Matrix6[T]) {
	target.data = m.data
}

// String 格式化字符串输出
func (m *Matrix6[T]) String() string {
	var sb strings.Builder
	for i := 0; i < Dim6; i++ {
		for j := 0; j < Dim6; j++ {
			fmt.Fprintf(&sb, "% .6e ", float64(m.data[i*Dim6+j]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// SymplecticJ 返回6维相空间的单位辛形式矩阵
// 按 (x, px, y, py, t, pt) 坐标排序的分块对角形式，
// 每个2x2块为 [[0, 1], [-1, 0]]
func SymplecticJ[T Float]() *Matrix6[T] {
	j := NewMatrix6[T]()
	for p := 0; p < Dim6; p += 2 {
		j.Set(p, p+1, 1)
		j.Set(p+1, p, -1)
	}
	return j
}
