package diag

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"beam/maths"
	"beam/particles"
	"beam/types"
)

// momentOrder 协方差矩阵坐标排序 (x, px, y, py, t, pt) 对应的SoA字段
var momentOrder = [maths.Dim6]types.Field{
	types.FieldX, types.FieldPx,
	types.FieldY, types.FieldPy,
	types.FieldT, types.FieldPt,
}

// Moments 对粒子系综做矩归约，得到6x6协方差矩阵
// 丢失标记的粒子不参与统计；样本数不足时返回错误
// 使用样本协方差（1/(n-1)归一化）
func Moments[T maths.Float](pc *particles.Container[T]) (*CovMatrix[T], error) {
	n := pc.Alive()
	if n < 2 {
		return nil, fmt.Errorf("moments: need at least 2 particles, have %d", n)
	}
	data := make([]float64, 0, n*maths.Dim6)
	for _, part := range pc.Partitions() {
		for i, sz := 0, part.Size(); i < sz; i++ {
			if part.IsLost(i) {
				continue
			}
			for _, f := range momentOrder {
				data = append(data, float64(part.Field(f)[i]))
			}
		}
	}
	var sym mat.SymDense
	stat.CovarianceMatrix(&sym, mat.NewDense(n, maths.Dim6, data), nil)
	return FromSym[T](&sym), nil
}

// Means 返回系综各坐标的均值，按 (x, px, y, py, t, pt) 排序
// 丢失标记的粒子不参与统计
func Means[T maths.Float](pc *particles.Container[T]) [maths.Dim6]float64 {
	var sums [maths.Dim6]float64
	n := 0
	cols := [maths.Dim6][]float64{}
	for i := range cols {
		cols[i] = make([]float64, 0, pc.Size())
	}
	for _, part := range pc.Partitions() {
		for i, sz := 0, part.Size(); i < sz; i++ {
			if part.IsLost(i) {
				continue
			}
			for k, f := range momentOrder {
				cols[k] = append(cols[k], float64(part.Field(f)[i]))
			}
			n++
		}
	}
	if n == 0 {
		return sums
	}
	for k := range sums {
		sums[k] = floats.Sum(cols[k]) / float64(n)
	}
	return sums
}
