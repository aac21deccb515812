package debug

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Charts 曲线绘制
type Charts struct {
	Record
}

// newLine 创建统一风格的曲线图
func newLine(title, subtitle string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			SplitNumber: 20,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithAnimation(true),
	)
	return line
}

// lineData 数值序列转换为曲线数据
func lineData(values []float64) []opts.LineData {
	items := make([]opts.LineData, len(values))
	for i, v := range values {
		items[i].Value = v
	}
	return items
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	// 横轴：路径长度
	xs := make([]string, len(c.S))
	for i, s := range c.S {
		xs[i] = fmt.Sprintf("%.4g", s)
	}

	// 矩不变量曲线
	lineI := newLine("矩不变量曲线", "辛矩不变量 I2/I4/I6 随路径长度变化曲线")
	lineI.SetXAxis(xs).
		AddSeries("I2", lineData(c.I2)).
		AddSeries("I4", lineData(c.I4)).
		AddSeries("I6", lineData(c.I6))

	// 本征发射度曲线
	lineE := newLine("本征发射度曲线", "本征发射度 e1/e2/e3 随路径长度变化曲线")
	lineE.SetXAxis(xs).
		AddSeries("e1", lineData(c.E1)).
		AddSeries("e2", lineData(c.E2)).
		AddSeries("e3", lineData(c.E3))

	// 构建界面
	page := components.NewPage()
	page.AddCharts(
		lineI,
		lineE,
	)
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	c.Render(w)
}

func (c *Charts) Error(err error) { log.Println(err) }
