package cache

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/ticketreport/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestReportKey(t *testing.T) {
	assert.Equal(t, "cache:report:VVO:TLV:abc", reportKey("VVO:TLV:abc"))
}

func TestNewRedisCache(t *testing.T) {
	c := NewRedisCache(config.RedisConfig{Addr: "localhost:6379"}, time.Minute)
	assert.NotNil(t, c)
	assert.Equal(t, time.Minute, c.reportTTL)
	assert.NoError(t, c.Close())
}

func TestRedisCache_GetReport_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	c := NewRedisCacheWithClient(client, time.Minute)
	defer c.Close()

	report, err := c.GetReport(context.Background(), "key")
	assert.Error(t, err)
	assert.Nil(t, report)
}
