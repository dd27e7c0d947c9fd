package bootstrap

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Goden-Gun/mt4-retcode/pkg/codes"
	"github.com/Goden-Gun/mt4-retcode/pkg/kafka"
)

// InitKafka initializes a shared Kafka manager whose publishes are logged.
func InitKafka(cfg kafka.Config) (*kafka.Manager, error) {
	m, err := kafka.NewManager(cfg)
	if err != nil {
		return nil, err
	}
	m.SetPublishObserver(publishLogObserver{})
	return m, nil
}

// InitReporter initializes a Kafka manager and a result reporter on cfg.Topic.
func InitReporter(cfg kafka.Config, r *codes.Resolver) (*kafka.Manager, *kafka.Reporter, error) {
	m, err := InitKafka(cfg)
	if err != nil {
		return nil, nil, err
	}
	return m, kafka.NewReporter(m, cfg.Topic, r), nil
}

// publishLogObserver 记录每次 Kafka 发布的耗时，失败时输出 warn
type publishLogObserver struct{}

func (publishLogObserver) ObservePublish(topic string, duration time.Duration, err error) {
	entry := log.WithFields(log.Fields{"topic": topic, "duration_ms": duration.Milliseconds()})
	if err != nil {
		entry.WithError(err).Warn("kafka publish failed")
		return
	}
	entry.Debug("kafka publish")
}
