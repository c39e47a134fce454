package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// WebhookDedup 記錄已處理過的金流回調投遞，讓重複投遞成為無害的 no-op。
// 金流端可能對同一筆交易重送多次 webhook，狀態機本身是冪等的，
// 這裡再用 SETNX 擋掉重複投遞，避免重複寄送通知。
type WebhookDedup interface {
	// MarkProcessed 標記投遞已處理；回傳 true 表示第一次看到這個投遞
	MarkProcessed(ctx context.Context, deliveryID string) (bool, error)
	// Forget 撤掉投遞標記，讓金流端重送同一個投遞時能重新處理
	Forget(ctx context.Context, deliveryID string) error
}

type RedisWebhookDedupImpl struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisWebhookDedup(client *redis.Client, ttl time.Duration) WebhookDedup {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisWebhookDedupImpl{
		client: client,
		ttl:    ttl,
	}
}

func (d *RedisWebhookDedupImpl) getKey(deliveryID string) string {
	return fmt.Sprintf("webhook:delivery:%s", deliveryID)
}

func (d *RedisWebhookDedupImpl) MarkProcessed(ctx context.Context, deliveryID string) (bool, error) {
	first, err := d.client.SetNX(ctx, d.getKey(deliveryID), 1, d.ttl).Result()
	if err != nil {
		return false, err
	}
	return first, nil
}

func (d *RedisWebhookDedupImpl) Forget(ctx context.Context, deliveryID string) error {
	return d.client.Del(ctx, d.getKey(deliveryID)).Err()
}
