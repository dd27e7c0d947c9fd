package config

import "github.com/Goden-Gun/mt4-retcode/pkg/codes"

// ==================== 基础配置 ====================

// AppConfig 应用基础配置
type AppConfig struct {
	Env    string `yaml:"env" mapstructure:"env"`
	NodeID string `yaml:"node_id" mapstructure:"node_id"`
}

// LogConfig 日志配置
type LogConfig struct {
	Format       string        `yaml:"format" mapstructure:"format"`
	Level        string        `yaml:"level" mapstructure:"level"`
	ReportCaller bool          `yaml:"report_caller" mapstructure:"report_caller"`
	File         LogFileConfig `yaml:"file" mapstructure:"file"`
}

// LogFileConfig 日志文件配置
type LogFileConfig struct {
	Enabled      bool   `yaml:"enabled" mapstructure:"enabled"`
	Dir          string `yaml:"dir" mapstructure:"dir"`
	Filename     string `yaml:"filename" mapstructure:"filename"`
	MaxAgeDays   int    `yaml:"max_age_days" mapstructure:"max_age_days"`
	RotationDays int    `yaml:"rotation_days" mapstructure:"rotation_days"`
}

// ==================== 返回码配置 ====================

// RetcodeConfig 返回码文案配置
type RetcodeConfig struct {
	// Locale 文案语言: zh-CN | en，默认 zh-CN
	Locale string `yaml:"locale" mapstructure:"locale"`
	// Fallback 未映射返回码的文案，为空使用内置文案
	Fallback string `yaml:"fallback" mapstructure:"fallback"`
	// Overrides 按返回码覆盖文案
	Overrides map[int]string `yaml:"overrides" mapstructure:"overrides"`
}

// Resolver 根据配置构建返回码解析器
func (r RetcodeConfig) Resolver() *codes.Resolver {
	return codes.NewResolver(codes.ParseLocale(r.Locale),
		codes.WithFallback(r.Fallback),
		codes.WithOverrides(r.Overrides),
	)
}

// ==================== 基础设施配置 ====================

// RedisConfig Redis 连接配置
type RedisConfig struct {
	Addr     string `yaml:"addr" mapstructure:"addr"`
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`
	Db       int    `yaml:"db" mapstructure:"db"`
}

// CatalogConfig Redis 返回码目录配置
type CatalogConfig struct {
	Prefix  string   `yaml:"prefix" mapstructure:"prefix"`
	TTL     Duration `yaml:"ttl" mapstructure:"ttl"`
	Locales []string `yaml:"locales" mapstructure:"locales"`
}

// ==================== 可观测性配置 ====================

// TracingConfig 分布式追踪配置
type TracingConfig struct {
	Exporter     string            `yaml:"exporter" mapstructure:"exporter"`
	Endpoint     string            `yaml:"endpoint" mapstructure:"endpoint"`
	ServiceName  string            `yaml:"service_name" mapstructure:"service_name"`
	Insecure     bool              `yaml:"insecure" mapstructure:"insecure"`
	SampleRatio  float64           `yaml:"sample_ratio" mapstructure:"sample_ratio"`
	ResourceTags map[string]string `yaml:"resource_tags" mapstructure:"resource_tags"`
}
