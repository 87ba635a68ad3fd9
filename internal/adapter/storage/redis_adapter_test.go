package storage

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestDecrementStock_Success(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)

	client.Del(ctx, "stock:301")
	adapter.SetStock(ctx, 301, 10)

	ok, err := adapter.DecrementStock(ctx, 301, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected success")
	}

	stock, _ := client.Get(ctx, "stock:301").Int()
	if stock != 7 {
		t.Errorf("expected stock 7, got %d", stock)
	}
}

func TestDecrementStock_Insufficient(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)

	client.Del(ctx, "stock:302")
	adapter.SetStock(ctx, 302, 2)

	ok, err := adapter.DecrementStock(ctx, 302, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected rejection")
	}

	stock, _ := client.Get(ctx, "stock:302").Int()
	if stock != 2 {
		t.Errorf("stock changed on rejection: %d", stock)
	}
}

func TestDecrementStock_UnwarmedPassesThrough(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)

	client.Del(ctx, "stock:303")

	ok, err := adapter.DecrementStock(ctx, 303, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("unwarmed product must pass through to the store")
	}

	// Pass-through must not create a key.
	if exists, _ := client.Exists(ctx, "stock:303").Result(); exists != 0 {
		t.Error("pass-through created a stock key")
	}
}

func TestIncrementStock_OnlyWhenWarmed(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)

	client.Del(ctx, "stock:304")
	if err := adapter.IncrementStock(ctx, 304, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists, _ := client.Exists(ctx, "stock:304").Result(); exists != 0 {
		t.Error("compensation minted stock for an unwarmed product")
	}

	adapter.SetStock(ctx, 304, 3)
	if err := adapter.IncrementStock(ctx, 304, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stock, _ := client.Get(ctx, "stock:304").Int()
	if stock != 7 {
		t.Errorf("expected stock 7, got %d", stock)
	}
}
