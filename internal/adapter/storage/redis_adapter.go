package storage

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const stockKeyPrefix = "stock:"

// Returns 1 when units were consumed, 0 when the cached count is too low and
// -1 when the product has no cached count at all (the store decides then).
var decrementStockScript = redis.NewScript(`
local key = KEYS[1]
local quantity = tonumber(ARGV[1])

local current = redis.call('GET', key)
if not current then
	return -1
end

current = tonumber(current)
if current >= quantity then
	redis.call('DECRBY', key, quantity)
	return 1
end

return 0
`)

// Compensation must never mint stock for a product that was never warmed.
var incrementStockScript = redis.NewScript(`
local key = KEYS[1]
local quantity = tonumber(ARGV[1])

if redis.call('EXISTS', key) == 1 then
	redis.call('INCRBY', key, quantity)
end

return 0
`)

// RedisAdapter keeps a cache-side stock count per product so hot products can
// reject oversold requests before touching the relational store. The store's
// conditional decrement stays authoritative.
type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func stockKey(productID int64) string {
	return stockKeyPrefix + strconv.FormatInt(productID, 10)
}

func (r *RedisAdapter) DecrementStock(ctx context.Context, productID int64, quantity int) (bool, error) {
	result, err := decrementStockScript.Run(ctx, r.client, []string{stockKey(productID)}, quantity).Int()
	if err != nil {
		return false, err
	}
	return result != 0, nil
}

func (r *RedisAdapter) IncrementStock(ctx context.Context, productID int64, quantity int) error {
	return incrementStockScript.Run(ctx, r.client, []string{stockKey(productID)}, quantity).Err()
}

func (r *RedisAdapter) SetStock(ctx context.Context, productID int64, quantity int) error {
	return r.client.Set(ctx, stockKey(productID), quantity, 0).Err()
}
