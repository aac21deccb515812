package maths

import (
	"math"
	"math/cmplx"

	"beam/warn"
)

// Roots 三次方程 a·x³+b·x²+c·x+d 的三个实根
// 根作为集合无序，但每种算法按固定顺序产出，可能包含重根（三重根退化情形）
type Roots[T Float] struct {
	X1, X2, X3 T
	// Degraded 表示判别式超出容差（方程实际存在复根），
	// 此时仅返回各根的实部，结果为低置信度，调用方需谨慎对待
	Degraded bool
}

// Slice 返回根的数组形式
func (r Roots[T]) Slice() [3]T {
	return [3]T{r.X1, r.X2, r.X3}
}

// cubicAux 计算三次方程的辅助量 Q、R 与判别式
// Q = (3ac−b²)/(9a²)，R = (9abc−27a²d−2b³)/(54a³)，Δ = Q³+R²
func cubicAux[T Float](a, b, c, d T) (q, r, disc T) {
	q = (3.0*a*c - b*b) / (9.0 * a * a)
	r = (9.0*a*b*c - 27.0*a*a*d - 2.0*b*b*b) / (54.0 * a * a * a)
	disc = q*q*q + r*r
	return q, r, disc
}

// cubicRealParts 以复数代数形式求值并取各根实部
// 判别式越界时两种求根方法共用此退化路径
func cubicRealParts[T Float](a, b, q, r, disc T) (x1, x2, x3 T) {
	qc := complex(float64(q), 0)
	rc := complex(float64(r), 0)
	dc := complex(float64(disc), 0)
	cv := cmplx.Pow(-rc+cmplx.Sqrt(dc), 1.0/3.0)
	if cv == 0 { // 三重根退化情形
		x1 = -b / (3.0 * a)
		x2 = x1
		x3 = x1
		return x1, x2, x3
	}
	// 单位立方根 ξ = (−1/2, √3/2)
	xi := complex(-0.5, math.Sqrt(3.0)/2.0)
	z1 := qc/cv - cv
	z2 := qc/(xi*cv) - xi*cv
	z3 := qc/(xi*xi*cv) - xi*xi*cv
	// 索引映射：z2→x1，z1→x2，z3→x3（保持源算法约定）
	x1 = T(real(z2)) - b/(3.0*a)
	x2 = T(real(z1)) - b/(3.0*a)
	x3 = T(real(z3)) - b/(3.0*a)
	return x1, x2, x3
}

// CubicRootsTrig 返回三次多项式 a·x³+b·x²+c·x+d 的三个根
// 使用Cardano公式的三角形式
// 实现假定三个根均为实根，并通过判别式符号校验该前提
// 前置条件：a ≠ 0（由调用方保证，违反属未定义行为边界，不做静默降级）
func CubicRootsTrig[T Float](a, b, c, d T) Roots[T] {
	var roots Roots[T]
	q, r, disc := cubicAux(a, b, c, d)

	// 判别式应 ≤ 0，否则存在复根，违反实根前提
	tol := DiscriminantTol[T]()
	if disc > tol {
		warn.Record("maths.CubicRootsTrig",
			"cubic polynomial has one or more complex (non-real) roots; "+
				"only the real part is returned, treat results with caution",
			warn.PriorityMedium)
		roots.X1, roots.X2, roots.X3 = cubicRealParts(a, b, q, r, disc)
		roots.Degraded = true
	} else if q == 0 { // 三重根退化情形
		roots.X1 = -b / (3.0 * a)
		roots.X2 = -b / (3.0 * a)
		roots.X3 = -b / (3.0 * a)
	} else {
		// 三个实根的三角形式
		// 判别式允许在容差内略为正值，夹取反余弦参数避免越界产生NaN
		arg := r / Sqrt(-(q * q * q))
		if arg > 1 {
			arg = 1
		} else if arg < -1 {
			arg = -1
		}
		theta := Acos(arg)
		pi := T(math.Pi)
		roots.X1 = 2.0*Sqrt(-q)*Cos(theta/3.0) - b/(3.0*a)
		roots.X2 = 2.0*Sqrt(-q)*Cos(theta/3.0+2.0*pi/3.0) - b/(3.0*a)
		roots.X3 = 2.0*Sqrt(-q)*Cos(theta/3.0+4.0*pi/3.0) - b/(3.0*a)
	}
	return roots
}

// CubicRootsAlg 返回三次多项式 a·x³+b·x²+c·x+d 的三个根
// 使用Cardano公式的代数形式（复数开立方，主分支）
// 实现假定三个根均为实根，并通过判别式符号校验该前提
// 前置条件：a ≠ 0（由调用方保证）
func CubicRootsAlg[T Float](a, b, c, d T) Roots[T] {
	var roots Roots[T]
	q, r, disc := cubicAux(a, b, c, d)

	tol := DiscriminantTol[T]()
	if disc > tol {
		warn.Record("maths.CubicRootsAlg",
			"cubic polynomial has one or more complex (non-real) roots; "+
				"only the real part is returned, treat results with caution",
			warn.PriorityMedium)
		roots.Degraded = true
	}
	roots.X1, roots.X2, roots.X3 = cubicRealParts(a, b, q, r, disc)
	return roots
}
