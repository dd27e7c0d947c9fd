package config

import "github.com/Goden-Gun/mt4-retcode/pkg/codes"

// ==================== LogConfig 默认值 ====================

// ApplyDefaults 应用日志配置默认值
func (l *LogConfig) ApplyDefaults() {
	if l.Format == "" {
		l.Format = "json"
	}
	if l.Level == "" {
		l.Level = "info"
	}
	if l.File.Dir == "" {
		l.File.Dir = "./logs"
	}
	if l.File.MaxAgeDays <= 0 {
		l.File.MaxAgeDays = 7
	}
	if l.File.RotationDays <= 0 {
		l.File.RotationDays = 1
	}
}

// ==================== RetcodeConfig 默认值 ====================

// ApplyDefaults 规范化文案语言
func (r *RetcodeConfig) ApplyDefaults() {
	r.Locale = string(codes.ParseLocale(r.Locale))
}

// ==================== CatalogConfig 默认值 ====================

// ApplyDefaults 应用目录配置默认值，TTL 为 0 表示不过期
func (c *CatalogConfig) ApplyDefaults() {
	if c.Prefix == "" {
		c.Prefix = "mt4:retcode"
	}
	if c.TTL < 0 {
		c.TTL = 0
	}
	if len(c.Locales) == 0 {
		c.Locales = []string{string(codes.LocaleZH), string(codes.LocaleEN)}
	}
}

// ==================== TracingConfig 默认值 ====================

// ApplyDefaults 应用 Tracing 配置默认值
func (t *TracingConfig) ApplyDefaults() {
	if t.Exporter == "" {
		t.Exporter = "disabled"
	}
	if t.ServiceName == "" {
		t.ServiceName = "mt4-retcode"
	}
	if t.SampleRatio <= 0 || t.SampleRatio > 1 {
		t.SampleRatio = 1.0
	}
}
