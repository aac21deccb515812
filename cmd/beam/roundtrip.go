package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"beam"
	"beam/diag/debug"
	"beam/element"
	"beam/particles"
	"beam/transform"
	"beam/types"
)

// RoundTripOptions 往返演示命令参数
type RoundTripOptions struct {
	Particles int     // 粒子数
	Seed      int64   // 随机种子
	Gamma     float64 // 设计洛伦兹因子
	Drift     float64 // 漂移段长度 [m]
	Output    string  // 诊断曲线输出路径（HTML）
}

// NewRoundTripCommand 创建往返演示命令
// 生成高斯束流，执行 t→s 变换、漂移推进与 s→t 回变换，
// 输出往返残差与各阶段诊断
func NewRoundTripCommand(cfg *EnvConfig) *cobra.Command {
	opts := &RoundTripOptions{}
	cmd := &cobra.Command{
		Use:   "roundtrip",
		Short: "高斯束流坐标系往返演示与诊断",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoundTrip(cmd, opts)
		},
	}
	cmd.Flags().IntVar(&opts.Particles, "particles", cfg.Particles, "粒子数")
	cmd.Flags().Int64Var(&opts.Seed, "seed", cfg.Seed, "随机种子")
	cmd.Flags().Float64Var(&opts.Gamma, "gamma", 2.0, "设计洛伦兹因子")
	cmd.Flags().Float64Var(&opts.Drift, "drift", 1.0, "漂移段长度 [m]")
	cmd.Flags().StringVar(&opts.Output, "output", cfg.Output, "诊断曲线输出路径（HTML）")
	return cmd
}

// runRoundTrip 执行往返演示
func runRoundTrip(cmd *cobra.Command, opts *RoundTripOptions) error {
	var ref particles.RefPart[float64]
	if err := ref.SetGamma(opts.Gamma); err != nil {
		return err
	}
	params := particles.GaussianParams[float64]{
		SigmaX: 1e-3, SigmaPx: 1e-4,
		SigmaY: 2e-3, SigmaPy: 2e-4,
		SigmaT: 3e-3, SigmaPt: 3e-4,
	}
	pc := particles.NewGaussianBeam(ref, params, opts.Particles, opts.Seed, 0)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ensemble %s: %d particles, system=%s\n", pc.ID(), pc.Size(), pc.CoordSystem())

	charts := &debug.Charts{}

	// 初始诊断（固定t）
	if err := debug.Update(&charts.Record, pc); err != nil {
		return err
	}
	sum, err := beam.Diagnose(pc)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "initial (fixed %s):\n%s\n", pc.CoordSystem(), sum)

	// 变换到固定s并经过漂移段
	if err := transform.Convert(pc, types.CoordS); err != nil {
		return err
	}
	drift := element.NewDrift[float64]("d1", opts.Drift)
	if err := drift.Push(pc); err != nil {
		return err
	}
	if err := debug.Update(&charts.Record, pc); err != nil {
		return err
	}

	// 回到固定t并做完整往返测量
	if err := transform.Convert(pc, types.CoordT); err != nil {
		return err
	}
	res, err := beam.RoundTrip(pc)
	if err != nil {
		return err
	}
	if err := debug.Update(&charts.Record, pc); err != nil {
		return err
	}
	fmt.Fprintf(out, "round-trip max residual: %.3e\n", res)

	sum, err = beam.Diagnose(pc)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "final (fixed %s):\n%s\n", pc.CoordSystem(), sum)

	// 诊断曲线输出
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := charts.Render(f); err != nil {
			return err
		}
		fmt.Fprintf(out, "diagnostics written to %s\n", opts.Output)
	}
	return nil
}
