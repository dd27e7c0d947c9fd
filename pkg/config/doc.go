// Package config provides configuration types and loading for MT4 return-code
// consumers (CLI, services that log or publish MT4 results).
//
// Usage:
//
//	import "github.com/Goden-Gun/mt4-retcode/pkg/config"
//
//	type MyConfig struct {
//	    Log     config.LogConfig     `yaml:"log" mapstructure:"log"`
//	    Retcode config.RetcodeConfig `yaml:"retcode" mapstructure:"retcode"`
//	    Redis   config.RedisConfig   `yaml:"redis" mapstructure:"redis"`
//	}
//
//	func LoadMyConfig() (*MyConfig, error) {
//	    cfg := &MyConfig{}
//	    if err := config.LoadConfig(cfg, config.LoadOptions{EnvPrefix: "MT4"}); err != nil {
//	        return nil, err
//	    }
//	    cfg.Retcode.ApplyDefaults()
//	    return cfg, nil
//	}
//
//	resolver := cfg.Retcode.Resolver()
package config
