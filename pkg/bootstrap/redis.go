package bootstrap

import (
	"context"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/Goden-Gun/mt4-retcode/pkg/catalog"
	"github.com/Goden-Gun/mt4-retcode/pkg/config"
)

// InitRedis 初始化 Redis 客户端并测试连接
func InitRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.Db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Errorf("redis初始化失败: %v", err)
		_ = client.Close()
		return nil, err
	}

	log.Info("redis initialized successfully")
	return client, nil
}

// InitCatalog 基于 Redis 客户端创建返回码目录
func InitCatalog(client *redis.Client, cfg config.CatalogConfig) *catalog.Store {
	cfg.ApplyDefaults()
	return catalog.NewStore(client, cfg.Prefix, cfg.TTL.Duration())
}
