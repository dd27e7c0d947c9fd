package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goden-Gun/mt4-retcode/pkg/codes"
)

type recordingObserver struct {
	topics []string
	errs   []error
}

func (o *recordingObserver) ObservePublish(topic string, _ time.Duration, err error) {
	o.topics = append(o.topics, topic)
	o.errs = append(o.errs, err)
}

func newTestManager(t *testing.T) (*Manager, *mocks.SyncProducer) {
	t.Helper()
	producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	m := NewManagerWithProducer(Config{Topic: "mt4.retcode"}, producer)
	t.Cleanup(func() { _ = m.Close() })
	return m, producer
}

func TestReporter_PublishesFailure(t *testing.T) {
	m, producer := newTestManager(t)
	obs := &recordingObserver{}
	m.SetPublishObserver(obs)

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var ev Report
		if err := json.Unmarshal(val, &ev); err != nil {
			return err
		}
		if ev.Code != 134 || ev.Symbol != "RET_TRADE_NO_MONEY" || ev.Message != "not enough money" {
			return errors.New("unexpected report body: " + string(val))
		}
		if ev.Operation != "trade_transaction" || ev.Login != 1001 || ev.ID == "" || ev.Locale != "en" {
			return errors.New("unexpected report meta: " + string(val))
		}
		return nil
	})

	r := NewReporter(m, "", codes.NewResolver(codes.LocaleEN))
	sent, err := r.Report(context.Background(), "trade_transaction", 1001, int(codes.RetTradeNoMoney))
	require.NoError(t, err)
	assert.True(t, sent)
	assert.Equal(t, []string{"mt4.retcode"}, obs.topics)
	assert.NoError(t, obs.errs[0])
}

func TestReporter_SkipsSuccess(t *testing.T) {
	m, _ := newTestManager(t)

	r := NewReporter(m, "", nil)
	sent, err := r.Report(context.Background(), "trade_transaction", 1001, int(codes.RetOK))
	require.NoError(t, err)
	assert.False(t, sent)
}

func TestReporter_PublishError(t *testing.T) {
	m, producer := newTestManager(t)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	r := NewReporter(m, "mt4.errors", nil)
	sent, err := r.Report(context.Background(), "user_record_get", 0, int(codes.RetTechProblem))
	assert.False(t, sent)
	require.Error(t, err)
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	assert.Contains(t, err.Error(), "RET_TECH_PROBLEM")
}

func TestReporter_CanceledContext(t *testing.T) {
	m, _ := newTestManager(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewReporter(m, "", nil)
	_, err := r.Report(ctx, "trade_transaction", 1, int(codes.RetTradeTimeout))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReporter_NewReport(t *testing.T) {
	r := NewReporter(nil, "", nil)
	fixed := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return fixed }

	ev := r.NewReport("trade_transaction", 7, int(codes.RetTradeRequote))
	assert.Equal(t, "RET_TRADE_REQUOTE", ev.Symbol)
	assert.Equal(t, "服务器其他问题", ev.Message)
	assert.True(t, ev.Reserved)
	assert.False(t, ev.Pending)
	assert.Equal(t, fixed, ev.OccurredAt)

	ev = r.NewReport("trade_transaction", 7, int(codes.RetTradeAccepted))
	assert.True(t, ev.Pending)

	_, err := r.Report(context.Background(), "x", 1, 2)
	assert.Error(t, err)
}

func TestPublish_NoTopic(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	m := NewManagerWithProducer(Config{}, producer)
	defer m.Close()

	err := m.Publish(context.Background(), "", nil, []byte("x"))
	assert.EqualError(t, err, "kafka topic empty")
}

func TestProducerConfig(t *testing.T) {
	cfg, err := ProducerConfig(Config{
		ClientID:      "mt4-retcode",
		Username:      "user",
		Password:      "pass",
		SASLMechanism: "scram-sha-512",
		RequiredAcks:  "one",
	})
	require.NoError(t, err)
	assert.Equal(t, "mt4-retcode", cfg.ClientID)
	assert.Equal(t, sarama.WaitForLocal, cfg.Producer.RequiredAcks)
	assert.Equal(t, 3, cfg.Producer.Retry.Max)
	assert.Equal(t, sarama.SASLMechanism(sarama.SASLTypeSCRAMSHA512), cfg.Net.SASL.Mechanism)
	assert.NotNil(t, cfg.Net.SASL.SCRAMClientGeneratorFunc())

	_, err = ProducerConfig(Config{Username: "u", Password: "p", SASLMechanism: "GSSAPI-ish"})
	assert.Error(t, err)

	_, err = NewManager(Config{})
	assert.EqualError(t, err, "kafka brokers empty")
}
