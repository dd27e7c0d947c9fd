package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	var l LogConfig
	l.ApplyDefaults()
	assert.Equal(t, "json", l.Format)
	assert.Equal(t, "info", l.Level)
	assert.Equal(t, "./logs", l.File.Dir)
	assert.Equal(t, 7, l.File.MaxAgeDays)

	r := RetcodeConfig{Locale: "en_US"}
	r.ApplyDefaults()
	assert.Equal(t, "en", r.Locale)

	c := CatalogConfig{TTL: -5}
	c.ApplyDefaults()
	assert.Equal(t, "mt4:retcode", c.Prefix)
	assert.Equal(t, Duration(0), c.TTL)
	assert.Equal(t, []string{"zh-CN", "en"}, c.Locales)

	tr := TracingConfig{SampleRatio: 3}
	tr.ApplyDefaults()
	assert.Equal(t, "disabled", tr.Exporter)
	assert.Equal(t, 1.0, tr.SampleRatio)
}

func TestDuration_UnmarshalText(t *testing.T) {
	tests := map[string]Duration{
		"":     0,
		"30":   30,
		"30s":  30,
		"2m":   120,
		" 1h ": 3600,
	}
	for in, want := range tests {
		var d Duration
		assert.NoError(t, d.UnmarshalText([]byte(in)), in)
		assert.Equal(t, want, d, in)
	}

	var d Duration
	assert.Error(t, d.UnmarshalText([]byte("soon")))
	assert.Equal(t, 90*time.Second, Duration(90).Duration())
}
