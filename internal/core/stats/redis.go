package stats

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"menu-image-resolver/internal/infrastructure/config"
	"menu-image-resolver/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// redisClient RedisRecorder 使用到的 redis 指令
type redisClient interface {
	HIncrBy(ctx context.Context, key, field string, incr int64) *redis.IntCmd
	HGetAll(ctx context.Context, key string) *redis.StringStringMapCmd
	Close() error
}

// RedisRecorder 以 redis hash 保存計數，多個實例共享同一份統計
type RedisRecorder struct {
	client  redisClient
	key     string
	timeout time.Duration
}

// NewRedisRecorder 連線 redis 並建立計數器
func NewRedisRecorder(cfg config.RedisConfig) (*RedisRecorder, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	// 測試連接
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("統計管理員已初始化",
		zap.String("backend", "redis"),
		zap.String("addr", cfg.Addr),
		zap.String("key", cfg.Key),
	)

	return newRedisRecorder(client, cfg.Key, cfg.Timeout), nil
}

func newRedisRecorder(client redisClient, key string, timeout time.Duration) *RedisRecorder {
	return &RedisRecorder{client: client, key: key, timeout: timeout}
}

func (r *RedisRecorder) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// Record 累加一次解析結果
func (r *RedisRecorder) Record(ctx context.Context, outcome string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.client.HIncrBy(ctx, r.key, outcome, 1).Err(); err != nil {
		return fmt.Errorf("failed to record outcome: %w", err)
	}
	return nil
}

// Snapshot 讀取目前計數
func (r *RedisRecorder) Snapshot(ctx context.Context) (map[string]int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	raw, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read stats: %w", err)
	}

	out := make(map[string]int64, len(raw))
	for field, value := range raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid counter %q: %w", field, err)
		}
		out[field] = n
	}
	return out, nil
}

// Close 關閉 redis 連線
func (r *RedisRecorder) Close() error {
	return r.client.Close()
}
