package maths

import (
	"math"

	"beam/types"
)

// 补充必要常量（浮点精度阈值）
const Epsilon = 1e-16

// Float 是一个约束，允许任何实数浮点类型
// 内核算法对单精度和双精度均保持正确，精度选择由调用方决定
type Float interface {
	~float32 | ~float64
}

// Abs 返回浮点绝对值
func Abs[T Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sqrt 泛型平方根
func Sqrt[T Float](v T) T {
	return T(math.Sqrt(float64(v)))
}

// Cos 泛型余弦
func Cos[T Float](v T) T {
	return T(math.Cos(float64(v)))
}

// Acos 泛型反余弦
func Acos[T Float](v T) T {
	return T(math.Acos(float64(v)))
}

// DiscriminantTol 按精度类型返回判别式容差
// 双精度使用 types.CubicRootTol，单精度按精度放宽
func DiscriminantTol[T Float]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(types.CubicRootTol32)
	default:
		return T(types.CubicRootTol)
	}
}
