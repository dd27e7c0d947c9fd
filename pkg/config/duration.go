package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Duration 支持 YAML/环境变量反序列化，单位为秒
// 可以从数字（秒数）或字符串（如 "30s"、"24h"）解析
type Duration int64

// Duration 返回 time.Duration 值
func (d Duration) Duration() time.Duration {
	return time.Duration(d) * time.Second
}

// Seconds 返回秒数
func (d Duration) Seconds() int64 {
	return int64(d)
}

// UnmarshalText 解析 "3600" 或 "1h" 形式
func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		*d = 0
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(n)
		return nil
	}
	td, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(td / time.Second)
	return nil
}
