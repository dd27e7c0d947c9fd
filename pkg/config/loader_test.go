package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goden-Gun/mt4-retcode/pkg/codes"
)

type testConfig struct {
	App     AppConfig     `mapstructure:"app"`
	Log     LogConfig     `mapstructure:"log"`
	Retcode RetcodeConfig `mapstructure:"retcode"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Catalog CatalogConfig `mapstructure:"catalog"`
}

const testYAML = `
app:
  env: test
log:
  format: text
  level: debug
retcode:
  locale: en
  fallback: "unknown MT4 result"
  overrides:
    "134": "please top up"
redis:
  addr: 127.0.0.1:6379
  password: from-file
catalog:
  prefix: "mt4:test"
  ttl: 1h
`

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	t.Setenv("ENV_FILE", filepath.Join(dir, "missing.env"))
	return dir
}

func TestLoadConfig(t *testing.T) {
	dir := writeConfig(t, "retcode_test.yaml", testYAML)
	t.Setenv("APP_ENV", "test")

	cfg := &testConfig{}
	require.NoError(t, LoadConfig(cfg, LoadOptions{ConfigPath: dir}))

	assert.Equal(t, "test", cfg.App.Env)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "en", cfg.Retcode.Locale)
	assert.Equal(t, "please top up", cfg.Retcode.Overrides[134])
	assert.Equal(t, "mt4:test", cfg.Catalog.Prefix)
	assert.Equal(t, Duration(3600), cfg.Catalog.TTL)

	r := cfg.Retcode.Resolver()
	assert.Equal(t, codes.LocaleEN, r.Locale())
	assert.Equal(t, "please top up", r.Resolve(int(codes.RetTradeNoMoney)))
	assert.Equal(t, "invalid data", r.Resolve(int(codes.RetInvalidData)))
	assert.Equal(t, "unknown MT4 result", r.Resolve(9999))
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	dir := writeConfig(t, "retcode_test.yaml", testYAML)
	t.Setenv("APP_ENV", "test")
	t.Setenv("MT4_RETCODE_LOCALE", "zh-CN")
	t.Setenv("MT4_CATALOG_TTL", "120")

	cfg := &testConfig{}
	require.NoError(t, LoadConfig(cfg, LoadOptions{ConfigPath: dir, EnvPrefix: "MT4"}))

	assert.Equal(t, "zh-CN", cfg.Retcode.Locale)
	assert.Equal(t, Duration(120), cfg.Catalog.TTL)
}

func TestLoadConfig_EnvOnly(t *testing.T) {
	dir := writeConfig(t, "other.yaml", "app: {}")
	t.Setenv("APP_ENV", "test")
	t.Setenv("MT4_REDIS_ADDR", "10.0.0.1:6379")
	t.Setenv("MT4_REDIS_DB", "3")
	t.Setenv("MT4_RETCODE_LOCALE", "en")
	t.Setenv("MT4_RETCODE_FALLBACK", "unknown MT4 result")
	t.Setenv("MT4_CATALOG_TTL", "90")
	t.Setenv("MT4_CATALOG_LOCALES", "zh-CN,en")
	t.Setenv("MT4_LOG_FILE_ENABLED", "true")

	cfg := &testConfig{}
	require.NoError(t, LoadConfig(cfg, LoadOptions{ConfigPath: dir, EnvPrefix: "MT4", AllowNoConfig: true}))

	assert.Equal(t, "10.0.0.1:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.Db)
	assert.Equal(t, "en", cfg.Retcode.Locale)
	assert.Equal(t, Duration(90), cfg.Catalog.TTL)
	assert.Equal(t, []string{"zh-CN", "en"}, cfg.Catalog.Locales)
	assert.True(t, cfg.Log.File.Enabled)
	assert.Empty(t, cfg.Retcode.Overrides)
	assert.Empty(t, cfg.Log.Format, "unset variables stay zero")
	assert.Equal(t, "unknown MT4 result", cfg.Retcode.Resolver().Resolve(9999))
}

func TestLoadConfig_MissingFile(t *testing.T) {
	dir := writeConfig(t, "other.yaml", "app: {}")
	t.Setenv("APP_ENV", "test")

	err := LoadConfig(&testConfig{}, LoadOptions{ConfigPath: dir})
	assert.Error(t, err)

	assert.NoError(t, LoadConfig(&testConfig{}, LoadOptions{ConfigPath: dir, AllowNoConfig: true}))
}

func TestLoadConfigWithSecrets(t *testing.T) {
	dir := writeConfig(t, "retcode_test.yaml", testYAML)
	t.Setenv("APP_ENV", "test")

	secretFile := filepath.Join(dir, "redis-password")
	require.NoError(t, os.WriteFile(secretFile, []byte("s3cret\n"), 0o600))
	t.Setenv("REDIS_PASSWORD_FILE", secretFile)

	cfg := &testConfig{}
	err := LoadConfigWithSecrets(cfg, []SecretDefinition{
		{Name: "REDIS_PASSWORD", Target: &cfg.Redis.Password},
		{Name: "REDIS_USERNAME", Target: &cfg.Redis.Username},
	}, LoadOptions{ConfigPath: dir})
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Redis.Password)
	assert.Empty(t, cfg.Redis.Username)

	err = LoadConfigWithSecrets(&testConfig{}, []SecretDefinition{
		{Name: "MT4_RETCODE_TEST_MISSING", Required: true},
	}, LoadOptions{ConfigPath: dir})
	var notFound *SecretNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "MT4_RETCODE_TEST_MISSING", notFound.Name)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("APP_ENV", "")
	assert.Equal(t, "dev", GetEnv())
	t.Setenv("APP_ENV", "prod")
	assert.Equal(t, "prod", GetEnv())
}

func TestGetNodeID(t *testing.T) {
	t.Setenv("MT4_NODE", "")
	t.Setenv("HOSTNAME", "host-1")
	assert.Equal(t, "host-1", GetNodeID("MT4_NODE"))
	t.Setenv("MT4_NODE", "node-7")
	assert.Equal(t, "node-7", GetNodeID("MT4_NODE"))
}
