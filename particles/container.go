package particles

import (
	"fmt"

	"github.com/google/uuid"

	"beam/maths"
	"beam/types"
)

// Partition 粒子分区（空间/所有权分片）
// 采用SoA布局：每个字段一条连续切片，便于数据并行内核按字段流式访问
type Partition[T maths.Float] struct {
	fields [types.FieldNum][]T
	lost   []bool // 粒子丢失标记（孔径遮挡等），不影响存储顺序
}

// newPartition 创建指定容量的空分区
func newPartition[T maths.Float](capacity int) *Partition[T] {
	p := &Partition[T]{}
	for i := range p.fields {
		p.fields[i] = make([]T, 0, capacity)
	}
	p.lost = make([]bool, 0, capacity)
	return p
}

// Size 返回分区内粒子数量
func (p *Partition[T]) Size() int {
	return len(p.fields[types.FieldX])
}

// Field 返回指定字段的底层切片引用（直接操作底层数据）
func (p *Partition[T]) Field(f types.Field) []T {
	return p.fields[f]
}

// IsLost 返回指定粒子的丢失标记
func (p *Partition[T]) IsLost(i int) bool {
	return p.lost[i]
}

// MarkLost 设置指定粒子的丢失标记
func (p *Partition[T]) MarkLost(i int) {
	p.lost[i] = true
}

// append 追加一个粒子的全部字段值
func (p *Partition[T]) append(values [types.FieldNum]T) {
	for i := range p.fields {
		p.fields[i] = append(p.fields[i], values[i])
	}
	p.lost = append(p.lost, false)
}

// Container 粒子系综容器
// 持有SoA字段存储、参考粒子记录与系综级坐标系标记
// 字段数据归容器所有，数值内核只借用视图，不跨调用保留状态
type Container[T maths.Float] struct {
	id      uuid.UUID
	system  types.CoordSystem
	ref     RefPart[T]
	parts   []*Partition[T]
	boxSize int
}

// NewContainer 创建粒子容器
// boxSize ≤ 0 时使用 types.DefaultBoxSize
func NewContainer[T maths.Float](system types.CoordSystem, ref RefPart[T], boxSize int) *Container[T] {
	if boxSize <= 0 {
		boxSize = types.DefaultBoxSize
	}
	return &Container[T]{
		id:      uuid.New(),
		system:  system,
		ref:     ref,
		boxSize: boxSize,
	}
}

// ID 返回系综标识（用于诊断数据关联）
func (c *Container[T]) ID() uuid.UUID { return c.id }

// CoordSystem 返回当前坐标系标记
func (c *Container[T]) CoordSystem() types.CoordSystem { return c.system }

// SetCoordSystem 更新坐标系标记
func (c *Container[T]) SetCoordSystem(system types.CoordSystem) { c.system = system }

// Ref 返回参考粒子记录
func (c *Container[T]) Ref() RefPart[T] { return c.ref }

// SetRef 更新参考粒子记录
func (c *Container[T]) SetRef(ref RefPart[T]) { c.ref = ref }

// AddParticle 追加一个粒子（按当前坐标系语义的六个字段值）
// 当前分区满时自动开启新分区
func (c *Container[T]) AddParticle(values [types.FieldNum]T) {
	n := len(c.parts)
	if n == 0 || c.parts[n-1].Size() >= c.boxSize {
		c.parts = append(c.parts, newPartition[T](c.boxSize))
		n++
	}
	c.parts[n-1].append(values)
}

// Size 返回系综内粒子总数
func (c *Container[T]) Size() int {
	total := 0
	for _, p := range c.parts {
		total += p.Size()
	}
	return total
}

// Alive 返回未被标记丢失的粒子数量
func (c *Container[T]) Alive() int {
	total := 0
	for _, p := range c.parts {
		for _, lost := range p.lost {
			if !lost {
				total++
			}
		}
	}
	return total
}

// Partitions 返回全部分区
func (c *Container[T]) Partitions() []*Partition[T] {
	return c.parts
}

// At 按全局索引读取一个粒子的全部字段值（跨分区，测试与诊断用）
func (c *Container[T]) At(index int) [types.FieldNum]T {
	for _, p := range c.parts {
		if index < p.Size() {
			var values [types.FieldNum]T
			for f := range values {
				values[f] = p.fields[f][index]
			}
			return values
		}
		index -= p.Size()
	}
	panic(fmt.Sprintf("particle index out of range: %d", index))
}
