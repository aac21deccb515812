package diag

import "beam/maths"

// KineticInvariants 从6x6束流协方差矩阵计算三个独立的辛矩不变量 I2、I4、I6
// 这三个标量在任何线性辛传输映射下保持不变，用于本征发射度的计算，见：
//
//	G. Rangarajan, F. Neri, A. Dragt, "Generalized Emittance Invariants",
//	Proc. 1989 IEEE Part. Accel. Conf., doi:10.1109/PAC.1989.73422
//	A. Dragt, F. Neri, G. Rangarajan, "General Moment Invariants for
//	Linear Hamiltonian Systems", Phys. Rev. A 45, 2572 (1992)
//
// 令 S = Σ·J（J为单位辛形式），则
//
//	I2 = -tr(S²)/2，I4 = +tr(S⁴)/2，I6 = -tr(S⁶)/2
//
// 物理有效状态下 I2 ≥ 0
func KineticInvariants[T maths.Float](sigma *CovMatrix[T]) (i2, i4, i6 T) {
	j := maths.SymplecticJ[T]()
	s1 := sigma.Matrix().Mul(j)
	s2 := s1.Mul(s1)
	s4 := s2.Mul(s2)
	s6 := s4.Mul(s2)
	i2 = -s2.Trace() / 2.0
	i4 = s4.Trace() / 2.0
	i6 = -s6.Trace() / 2.0
	return i2, i4, i6
}

// Eigenemittances 从6x6束流协方差矩阵计算三个本征发射度 e1、e2、e3
// 本征发射度在线性辛传输下不变，在无耦合极限下退化为
// 各平面投影归一化rms发射度
//
// 由矩不变量构造三次多项式，其根为 -e²（牛顿恒等式给出系数）：
//
//	a = 1
//	b = I2
//	c = (I2² - I4)/2
//	d = (I2³ - 3·I2·I4 + 2·I6)/6
//
// 对每个实根取绝对值后开平方，保证返回值非负
// （接近零的根因舍入可能出现小负值）
//
// degraded 为真表示求根判别式越界（存在复根），
// 由求根器经告警旁路上报，结果为低置信度
func Eigenemittances[T maths.Float](sigma *CovMatrix[T]) (e1, e2, e3 T, degraded bool) {
	i2, i4, i6 := KineticInvariants(sigma)

	a := T(1.0)
	b := i2
	c := (i2*i2 - i4) / 2.0
	d := (i2*i2*i2 - 3.0*i2*i4 + 2.0*i6) / 6.0

	roots := maths.CubicRootsTrig(a, b, c, d)
	e1 = maths.Sqrt(maths.Abs(roots.X1))
	e2 = maths.Sqrt(maths.Abs(roots.X2))
	e3 = maths.Sqrt(maths.Abs(roots.X3))
	return e1, e2, e3, roots.Degraded
}

// ProjectedEmittances 计算三个单平面投影rms发射度
// ε = √(Σqq·Σpp − Σqp²)，按 (x, y, t) 平面顺序返回
// 无耦合束流下与本征发射度（不计顺序）一致
func ProjectedEmittances[T maths.Float](sigma *CovMatrix[T]) (ex, ey, et T) {
	plane := func(q, p int) T {
		det := sigma.At(q, q)*sigma.At(p, p) - sigma.At(q, p)*sigma.At(q, p)
		return maths.Sqrt(maths.Abs(det))
	}
	return plane(0, 1), plane(2, 3), plane(4, 5)
}
