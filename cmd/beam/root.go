package main

import "github.com/spf13/cobra"

// NewRootCommand 创建根命令
func NewRootCommand(cfg *EnvConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "beam",
		Short:        "束流诊断与坐标变换内核命令行工具",
		Long:         "计算束流协方差矩阵的辛矩不变量与本征发射度，并在固定s/固定t纵向参数化之间转换粒子系综。",
		SilenceUsage: true,
	}
	cmd.AddCommand(NewInvariantsCommand())
	cmd.AddCommand(NewRoundTripCommand(cfg))
	return cmd
}
