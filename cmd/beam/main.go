package main

import (
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
)

// EnvConfig 环境变量默认配置
type EnvConfig struct {
	Seed      int64  `env:"BEAM_SEED" envDefault:"42"`          // 随机种子
	Particles int    `env:"BEAM_PARTICLES" envDefault:"10000"` // 粒子数
	Output    string `env:"BEAM_OUTPUT"`                        // 诊断输出路径（HTML）
}

func main() {
	// 告警旁路走全局zap日志器
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalln(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatalln(err)
	}

	if err := NewRootCommand(&cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
