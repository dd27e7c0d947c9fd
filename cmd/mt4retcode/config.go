package main

import (
	"github.com/urfave/cli"

	"github.com/Goden-Gun/mt4-retcode/pkg/config"
	"github.com/Goden-Gun/mt4-retcode/pkg/kafka"
)

// Config mt4retcode 全部配置
type Config struct {
	App     config.AppConfig     `yaml:"app" mapstructure:"app"`
	Log     config.LogConfig     `yaml:"log" mapstructure:"log"`
	Retcode config.RetcodeConfig `yaml:"retcode" mapstructure:"retcode"`
	Redis   config.RedisConfig   `yaml:"redis" mapstructure:"redis"`
	Catalog config.CatalogConfig `yaml:"catalog" mapstructure:"catalog"`
	Kafka   kafka.Config         `yaml:"kafka" mapstructure:"kafka"`
	Tracing config.TracingConfig `yaml:"tracing" mapstructure:"tracing"`
}

func loadConfig(c *cli.Context) (*Config, error) {
	cfg := &Config{}
	err := config.LoadConfigWithSecrets(cfg, []config.SecretDefinition{
		{Name: "REDIS_PASSWORD", Target: &cfg.Redis.Password},
		{Name: "KAFKA_PASSWORD", Target: &cfg.Kafka.Password},
	}, config.LoadOptions{
		ConfigPath:    c.GlobalString("config-dir"),
		EnvPrefix:     "MT4",
		AllowNoConfig: true,
	})
	if err != nil {
		return nil, err
	}

	if locale := c.GlobalString("locale"); locale != "" {
		cfg.Retcode.Locale = locale
	}
	cfg.App.Env = config.GetEnv()
	if cfg.App.NodeID == "" {
		cfg.App.NodeID = config.GetNodeID("MT4_NODE_ID")
	}
	cfg.Log.ApplyDefaults()
	cfg.Retcode.ApplyDefaults()
	cfg.Catalog.ApplyDefaults()
	cfg.Tracing.ApplyDefaults()
	return cfg, nil
}
