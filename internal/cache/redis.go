package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Domenick1991/ticketreport/config"
	"github.com/Domenick1991/ticketreport/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client    *redis.Client
	reportTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, reportTTL time.Duration) *RedisCache {
	return NewRedisCacheWithClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		reportTTL,
	)
}

func NewRedisCacheWithClient(client *redis.Client, reportTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, reportTTL: reportTTL}
}

// GetReport returns nil, nil on a cache miss.
func (c *RedisCache) GetReport(ctx context.Context, key string) (*domain.Report, error) {
	data, err := c.client.Get(ctx, reportKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *RedisCache) SetReport(ctx context.Context, key string, report *domain.Report) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, reportKey(key), payload, c.reportTTL).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func reportKey(key string) string {
	return "cache:report:" + key
}
