package diag

import (
	"gonum.org/v1/gonum/mat"

	"beam/maths"
)

// CovMatrix 6x6束流协方差矩阵
// 坐标排序为 (x, px, y, py, t, pt)
// 物理有效束流下应为对称半正定矩阵；算法不强制校验该性质，
// 但计算结果的正确性依赖于它（由调用方保证）
type CovMatrix[T maths.Float] struct {
	m maths.Matrix6[T]
}

// NewCovMatrix 创建零协方差矩阵
func NewCovMatrix[T maths.Float]() *CovMatrix[T] {
	return &CovMatrix[T]{}
}

// At 获取矩阵元素（越界panic）
func (s *CovMatrix[T]) At(row, col int) T {
	return s.m.At(row, col)
}

// Set 对称设置矩阵元素：同时写入 (i,j) 与 (j,i)
func (s *CovMatrix[T]) Set(row, col int, value T) {
	s.m.Set(row, col, value)
	s.m.Set(col, row, value)
}

// Matrix 返回底层矩阵的副本
func (s *CovMatrix[T]) Matrix() *maths.Matrix6[T] {
	out := maths.NewMatrix6[T]()
	s.m.Copy(out)
	return out
}

// String 格式化字符串输出
func (s *CovMatrix[T]) String() string {
	return s.m.String()
}

// FromDense 从6x6稠密数组构建协方差矩阵（取上三角对称化）
func FromDense[T maths.Float](dense [maths.Dim6][maths.Dim6]T) *CovMatrix[T] {
	s := NewCovMatrix[T]()
	for i := 0; i < maths.Dim6; i++ {
		for j := i; j < maths.Dim6; j++ {
			s.Set(i, j, dense[i][j])
		}
	}
	return s
}

// FromSym 从gonum对称矩阵构建协方差矩阵（维度必须为6，否则panic）
func FromSym[T maths.Float](sym *mat.SymDense) *CovMatrix[T] {
	if n := sym.SymmetricDim(); n != maths.Dim6 {
		panic("covariance matrix must be 6x6")
	}
	s := NewCovMatrix[T]()
	for i := 0; i < maths.Dim6; i++ {
		for j := i; j < maths.Dim6; j++ {
			s.Set(i, j, T(sym.At(i, j)))
		}
	}
	return s
}

// ToSym 转换为gonum对称矩阵（双精度）
func (s *CovMatrix[T]) ToSym() *mat.SymDense {
	out := mat.NewSymDense(maths.Dim6, nil)
	for i := 0; i < maths.Dim6; i++ {
		for j := i; j < maths.Dim6; j++ {
			out.SetSym(i, j, float64(s.m.At(i, j)))
		}
	}
	return out
}
