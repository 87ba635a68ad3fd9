package port

import "context"

type StockCache interface {
	// DecrementStock atomically decreases cached stock, returns false if insufficient
	DecrementStock(ctx context.Context, productID int64, quantity int) (bool, error)

	// IncrementStock restores cached stock (compensation when the store rejects the sale)
	IncrementStock(ctx context.Context, productID int64, quantity int) error

	// SetStock primes the cache with the store's current stock count
	SetStock(ctx context.Context, productID int64, quantity int) error
}
