package types

// 默认数值参数定义
var (
	CubicRootTol   = 1e-12 // 三次方程判别式容差（float64，吸收浮点舍入误差）
	CubicRootTol32 = 1e-5  // 三次方程判别式容差（float32，按精度放宽）
	DefaultBoxSize = 4096  // 粒子分区默认容量
)
