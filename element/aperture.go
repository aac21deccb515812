package element

import (
	"fmt"

	"beam/maths"
	"beam/particles"
	"beam/types"
)

// Shape 孔径形状
type Shape int

// 孔径形状常量定义
const (
	ShapeRectangular Shape = iota // 矩形孔径
	ShapeElliptical               // 椭圆孔径
)

// shapeString 孔径形状名称映射
var shapeString = map[Shape]string{
	ShapeRectangular: "rectangular",
	ShapeElliptical:  "elliptical",
}

// String 返回孔径形状的字符串表示
func (s Shape) String() string {
	if name, ok := shapeString[s]; ok {
		return name
	}
	return "Unknown"
}

// Aperture 孔径限束元件（零长度）
// 将横向超出孔径的粒子打上丢失标记，不改变存储顺序与粒子数
type Aperture[T maths.Float] struct {
	name   string
	shape  Shape
	xmax   T // 水平半孔径 [m]
	ymax   T // 垂直半孔径 [m]
	dx, dy T // 横向安装偏移 [m]
}

// NewAperture 创建孔径元件
func NewAperture[T maths.Float](name string, shape Shape, xmax, ymax T) *Aperture[T] {
	return &Aperture[T]{name: name, shape: shape, xmax: xmax, ymax: ymax}
}

// SetOffset 设置横向安装偏移
func (a *Aperture[T]) SetOffset(dx, dy T) {
	a.dx = dx
	a.dy = dy
}

// Name 返回元件名称
func (a *Aperture[T]) Name() string { return a.name }

// Offset 返回横向安装偏移
func (a *Aperture[T]) Offset() (dx, dy T) { return a.dx, a.dy }

// Length 孔径为零长度元件
func (a *Aperture[T]) Length() T { return 0 }

// Thin 孔径为薄元件
func (a *Aperture[T]) Thin() bool { return true }

// Push 检查系综全部粒子并标记超出孔径者
// 前置条件：系综必须处于固定s坐标系
func (a *Aperture[T]) Push(pc *particles.Container[T]) error {
	if pc.CoordSystem() != types.CoordS {
		return fmt.Errorf("aperture %q: ensemble must be in fixed s coordinates, have %s",
			a.name, pc.CoordSystem())
	}
	for _, part := range pc.Partitions() {
		x := part.Field(types.FieldX)
		y := part.Field(types.FieldY)
		for i, sz := 0, part.Size(); i < sz; i++ {
			u := (x[i] - a.dx) / a.xmax
			v := (y[i] - a.dy) / a.ymax
			switch a.shape {
			case ShapeRectangular:
				if maths.Abs(u) > 1 || maths.Abs(v) > 1 {
					part.MarkLost(i)
				}
			case ShapeElliptical:
				if u*u+v*v > 1 {
					part.MarkLost(i)
				}
			}
		}
	}
	return nil
}
