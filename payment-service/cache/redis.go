package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ZRiley36/dragin-take-home-assignment/payment-service/model"
)

const (
	listKey = "payments:all"
	listTTL = 30 * time.Second
)

func Connect(addr string) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	log.Println("Redis connected (payment-service)")
	return rdb
}

// PaymentCache caches the full payment list. Writers call InvalidateList so
// a stale list never outlives the next read by more than the TTL.
type PaymentCache struct {
	rdb *redis.Client
}

func NewPaymentCache(rdb *redis.Client) *PaymentCache {
	return &PaymentCache{rdb: rdb}
}

func (c *PaymentCache) GetList(ctx context.Context) ([]model.Payment, bool) {
	val, err := c.rdb.Get(ctx, listKey).Result()
	if err != nil {
		return nil, false
	}

	var items []model.Payment
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, false
	}
	return items, true
}

func (c *PaymentCache) SetList(ctx context.Context, items []model.Payment) {
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, listKey, data, listTTL)
}

func (c *PaymentCache) InvalidateList(ctx context.Context) {
	c.rdb.Del(ctx, listKey)
}
