package bootstrap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/IBM/sarama/mocks"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goden-Gun/mt4-retcode/pkg/codes"
	"github.com/Goden-Gun/mt4-retcode/pkg/config"
	"github.com/Goden-Gun/mt4-retcode/pkg/kafka"
)

func resetStandardLogger(t *testing.T) {
	t.Helper()
	l := log.StandardLogger()
	out, formatter, level := l.Out, l.Formatter, l.GetLevel()
	t.Cleanup(func() {
		l.SetOutput(out)
		l.SetFormatter(formatter)
		l.SetLevel(level)
		l.SetReportCaller(false)
		l.ReplaceHooks(make(log.LevelHooks))
	})
}

func TestInitLogger_FileAndRetcodeHook(t *testing.T) {
	resetStandardLogger(t)
	dir := t.TempDir()

	err := InitLoggerWithOptions(config.LogConfig{
		Format: "json",
		Level:  "debug",
		File:   config.LogFileConfig{Enabled: true, Dir: dir, Filename: "retcode"},
	}, LoggerOptions{
		ServiceName:      "mt4-retcode-test",
		AddContainerHook: true,
		Resolver:         codes.Default(),
	})
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	log.WithField("ret_code", int(codes.RetTradeNoMoney)).Warn("open order failed")

	files, err := filepath.Glob(filepath.Join(dir, "retcode.2*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	body := string(data)
	assert.Contains(t, body, `"ret_msg":"资金不足"`)
	assert.Contains(t, body, `"ret_symbol":"RET_TRADE_NO_MONEY"`)
	assert.Contains(t, body, `"container_id"`)
}

func TestInitLogger_InvalidLevel(t *testing.T) {
	resetStandardLogger(t)

	require.NoError(t, InitLogger(config.LogConfig{Format: "text", Level: "loud"}))
	assert.Equal(t, log.InfoLevel, log.GetLevel())
	_, ok := log.StandardLogger().Formatter.(*log.TextFormatter)
	assert.True(t, ok)
}

func TestInitTracing_Disabled(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), config.TracingConfig{})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitReporter_NoBrokers(t *testing.T) {
	_, _, err := InitReporter(kafka.Config{}, nil)
	assert.Error(t, err)
}

func TestPublishLogObserver(t *testing.T) {
	resetStandardLogger(t)
	log.SetLevel(log.DebugLevel)
	hook := test.NewGlobal()

	producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	m := kafka.NewManagerWithProducer(kafka.Config{Topic: "mt4.retcode"}, producer)
	t.Cleanup(func() { _ = m.Close() })
	m.SetPublishObserver(publishLogObserver{})

	producer.ExpectSendMessageAndSucceed()
	require.NoError(t, m.Publish(context.Background(), "", []byte("k"), []byte("v")))
	producer.ExpectSendMessageAndFail(errors.New("broker down"))
	require.Error(t, m.Publish(context.Background(), "", []byte("k"), []byte("v")))

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, log.DebugLevel, entries[0].Level)
	assert.Equal(t, "mt4.retcode", entries[0].Data["topic"])
	assert.Equal(t, log.WarnLevel, entries[1].Level)
	assert.Equal(t, "kafka publish failed", entries[1].Message)
	assert.Contains(t, entries[1].Data, "duration_ms")
	assert.EqualError(t, entries[1].Data[log.ErrorKey].(error), "broker down")
}
