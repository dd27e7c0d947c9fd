package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/Goden-Gun/mt4-retcode/pkg/codes"
)

// DefaultPrefix 默认 Redis key 前缀
const DefaultPrefix = "mt4:retcode"

// FallbackField 目录 hash 中保存默认文案的字段
const FallbackField = "fallback"

// hashClient 目录使用到的 Redis 命令，*redis.Client 与 redis.Cmdable 均满足
type hashClient interface {
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	HMGet(ctx context.Context, key string, fields ...string) *redis.SliceCmd
	TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error)
}

var _ hashClient = (*redis.Client)(nil)

// Store 将返回码文案以 hash 形式发布到 Redis，供 UI 等展示层读取
//
// 每个 locale 一个 key: {prefix}:{locale}，field 为返回码，value 为文案。
type Store struct {
	client hashClient
	prefix string
	ttl    time.Duration
}

// NewStore 创建目录存储，ttl 为 0 表示不过期
func NewStore(client hashClient, prefix string, ttl time.Duration) *Store {
	if client == nil {
		return nil
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{client: client, prefix: prefix, ttl: ttl}
}

// Key 返回 locale 对应的 hash key
func (s *Store) Key(locale codes.Locale) string {
	return s.prefix + ":" + string(codes.ParseLocale(string(locale)))
}

// Publish 覆盖写入 r 的全部文案
func (s *Store) Publish(ctx context.Context, r *codes.Resolver) error {
	if s == nil {
		return errors.New("catalog store not configured")
	}
	if r == nil {
		r = codes.Default()
	}
	key := s.Key(r.Locale())
	entries := r.Entries()
	values := make(map[string]interface{}, len(entries)+1)
	for _, e := range entries {
		values[strconv.Itoa(int(e.Numeric))] = e.Message
	}
	values[FallbackField] = r.Fallback()

	// DEL + HSET + EXPIRE 在同一个 MULTI/EXEC 中执行，读方不会看到空 hash
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, values)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("catalog publish %s: %w", key, err)
	}
	log.WithFields(log.Fields{"key": key, "entries": len(entries)}).Info("retcode catalog published")
	return nil
}

// Lookup 从 Redis 读取 code 的文案，未发布或不存在时 ok 为 false
func (s *Store) Lookup(ctx context.Context, locale codes.Locale, code int) (string, bool, error) {
	if s == nil {
		return "", false, errors.New("catalog store not configured")
	}
	msg, err := s.client.HGet(ctx, s.Key(locale), strconv.Itoa(code)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return msg, msg != "", nil
}

// Resolve 优先读取 Redis 中的文案，永不返回空字符串
//
// 返回码未命中时使用目录中发布的 fallback；目录未发布或 Redis 不可用时回退到本地解析器。
func (s *Store) Resolve(ctx context.Context, r *codes.Resolver, code int) string {
	if r == nil {
		r = codes.Default()
	}
	if s == nil {
		return r.Resolve(code)
	}
	vals, err := s.client.HMGet(ctx, s.Key(r.Locale()), strconv.Itoa(code), FallbackField).Result()
	if err != nil {
		log.WithError(err).WithField("ret_code", code).Warn("retcode catalog lookup failed, using local table")
		return r.Resolve(code)
	}
	for _, v := range vals {
		if msg, ok := v.(string); ok && msg != "" {
			return msg
		}
	}
	return r.Resolve(code)
}
