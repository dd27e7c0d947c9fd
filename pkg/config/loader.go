package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// LoadOptions 加载配置选项
type LoadOptions struct {
	ConfigPath    string // 配置文件目录，默认 "./configs"
	ConfigName    string // 配置文件名前缀，默认 "retcode"，实际文件为 {ConfigName}_{APP_ENV}.yaml
	EnvPrefix     string // 环境变量前缀，用于 viper.AutomaticEnv
	AllowNoConfig bool   // 允许没有配置文件，纯环境变量配置
}

func (o *LoadOptions) applyDefaults() {
	if o.ConfigPath == "" {
		o.ConfigPath = "./configs"
	}
	if o.ConfigName == "" {
		o.ConfigName = "retcode"
	}
}

// LoadConfig 通用配置加载函数
// cfg 必须是指向配置结构体的指针
func LoadConfig(cfg interface{}, opts ...LoadOptions) error {
	var opt LoadOptions
	if len(opts) > 0 {
		opt = opts[0]
	}
	opt.applyDefaults()

	if err := loadDotEnv(); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigName(fmt.Sprintf("%s_%s", opt.ConfigName, GetEnv()))
	v.SetConfigType("yaml")
	v.AddConfigPath(opt.ConfigPath)

	// 配置环境变量支持
	if opt.EnvPrefix != "" {
		v.SetEnvPrefix(opt.EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
		// AutomaticEnv 只对已知 key 生效，没有配置文件时需显式绑定
		if err := bindEnvKeys(v, opt.EnvPrefix, reflect.TypeOf(cfg), ""); err != nil {
			return fmt.Errorf("bind env failed: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || !opt.AllowNoConfig {
			return fmt.Errorf("read config failed: %w", err)
		}
	}

	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(cfg, hook); err != nil {
		return fmt.Errorf("unmarshal config failed: %w", err)
	}

	return nil
}

// bindEnvKeys 按 mapstructure 标签为每个叶子字段绑定 {PREFIX}_{A}_{B} 形式的环境变量
// map 字段不绑定，只能来自配置文件
func bindEnvKeys(v *viper.Viper, prefix string, t reflect.Type, parent string) error {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		key := name
		if parent != "" {
			key = parent + "." + name
		}
		ft := f.Type
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		switch {
		case ft.Kind() == reflect.Struct:
			next := key
			if opts == "squash" {
				next = parent
			}
			if err := bindEnvKeys(v, prefix, ft, next); err != nil {
				return err
			}
		case ft.Kind() == reflect.Map:
		default:
			env := strings.ToUpper(prefix + "_" + strings.ReplaceAll(key, ".", "_"))
			if err := v.BindEnv(key, env); err != nil {
				return err
			}
		}
	}
	return nil
}

// loadDotEnv 加载 ENV_FILE 指定的文件，未指定时加载当前目录 .env，文件不存在不报错
func loadDotEnv() error {
	envFile := os.Getenv("ENV_FILE")
	name := envFile
	if name == "" {
		name = ".env"
	}
	var err error
	if envFile != "" {
		err = godotenv.Load(envFile)
	} else {
		err = godotenv.Load()
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s failed: %w", name, err)
	}
	return nil
}

// GetEnv 获取当前环境，默认为 "dev"
func GetEnv() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		return "dev"
	}
	return env
}

// GetNodeID 获取节点 ID，按顺序尝试多个环境变量，最后回退到 HOSTNAME
func GetNodeID(envKeys ...string) string {
	for _, key := range envKeys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return os.Getenv("HOSTNAME")
}
