package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"beam"
	"beam/diag"
	"beam/maths"
)

// SigmaFile 协方差矩阵输入文件格式
type SigmaFile struct {
	// Sigma 6x6协方差矩阵，坐标排序 (x, px, y, py, t, pt)
	Sigma [][]float64 `yaml:"sigma"`
}

// loadSigma 从YAML文件读取协方差矩阵
func loadSigma(path string) (*diag.CovMatrix[float64], error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file SigmaFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(file.Sigma) != maths.Dim6 {
		return nil, fmt.Errorf("sigma must have %d rows, have %d", maths.Dim6, len(file.Sigma))
	}
	var dense [maths.Dim6][maths.Dim6]float64
	for i, row := range file.Sigma {
		if len(row) != maths.Dim6 {
			return nil, fmt.Errorf("sigma row %d must have %d entries, have %d", i, maths.Dim6, len(row))
		}
		copy(dense[i][:], row)
	}
	return diag.FromDense(dense), nil
}

// NewInvariantsCommand 创建不变量计算命令
func NewInvariantsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "invariants <sigma.yaml>",
		Short: "从协方差矩阵文件计算矩不变量与本征发射度",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sigma, err := loadSigma(args[0])
			if err != nil {
				return err
			}
			sum := beam.DiagnoseSigma(sigma)
			fmt.Fprintln(cmd.OutOrStdout(), sum)
			return nil
		},
	}
}
