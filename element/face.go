package element

import (
	"beam/maths"
	"beam/particles"
)

// 元件能力按正交接口组合，而非多重继承：
// 元件类型按需实现其中的若干接口，调用方按能力断言

// Named 具名元件
// 名称为普通值语义字符串，无自定义生命周期管理
type Named interface {
	Name() string
}

// Aligned 具横向安装偏移的元件
type Aligned[T maths.Float] interface {
	Offset() (dx, dy T)
}

// Sized 具纵向长度的元件
// 零长度元件（薄元件）Length 返回0且 Thin 返回真
type Sized[T maths.Float] interface {
	Length() T
	Thin() bool
}

// Pusher 推进粒子的元件
// 实现方要求系综处于特定坐标系，不满足时返回前置条件错误
type Pusher[T maths.Float] interface {
	Push(pc *particles.Container[T]) error
}
