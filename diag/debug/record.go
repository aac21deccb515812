package debug

import (
	"encoding/json"
	"io"

	"beam/diag"
	"beam/maths"
	"beam/particles"
)

// Record 记录束流诊断历史状态
// 随传输过程逐点追加矩不变量与本征发射度序列
type Record struct {
	S        []float64 // 路径长度列 [m]
	I2       []float64 // 二阶矩不变量列
	I4       []float64 // 四阶矩不变量列
	I6       []float64 // 六阶矩不变量列
	E1       []float64 // 本征发射度列
	E2       []float64
	E3       []float64
	Degraded []bool // 低置信度标记列（求根判别式越界）
}

// Update 对系综做矩归约并追加一条诊断记录
func Update[T maths.Float](list *Record, pc *particles.Container[T]) error {
	sigma, err := diag.Moments(pc)
	if err != nil {
		return err
	}
	i2, i4, i6 := diag.KineticInvariants(sigma)
	e1, e2, e3, degraded := diag.Eigenemittances(sigma)
	list.Append(float64(pc.Ref().S),
		float64(i2), float64(i4), float64(i6),
		float64(e1), float64(e2), float64(e3), degraded)
	return nil
}

// Append 追加一条诊断记录
func (list *Record) Append(s, i2, i4, i6, e1, e2, e3 float64, degraded bool) {
	list.S = append(list.S, s)
	list.I2 = append(list.I2, i2)
	list.I4 = append(list.I4, i4)
	list.I6 = append(list.I6, i6)
	list.E1 = append(list.E1, e1)
	list.E2 = append(list.E2, e2)
	list.E3 = append(list.E3, e3)
	list.Degraded = append(list.Degraded, degraded)
}

// Len 返回记录条数
func (list *Record) Len() int { return len(list.S) }

// Render 格式和输出内容
func (list *Record) Render(w io.Writer) error { return json.NewEncoder(w).Encode(list) }
