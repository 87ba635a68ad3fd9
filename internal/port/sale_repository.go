package port

import (
	"context"
	"time"

	"github.com/rl1809/sale-recorder/internal/core/domain"
)

type SaleRepository interface {
	// RecordSale applies the order insert, the order-line insert and the stock
	// decrement as one transaction: all three become visible together or none do.
	// The stock check is re-evaluated at write time under a row lock.
	RecordSale(ctx context.Context, sale domain.Sale, at time.Time) (*domain.SaleRecord, error)

	// GetProduct retrieves a catalog product, nil if absent.
	GetProduct(ctx context.Context, productID int64) (*domain.Product, error)

	// GetInventory retrieves the live inventory row for a product (the
	// lowest-id row when the product is stocked in several warehouses),
	// nil if absent.
	GetInventory(ctx context.Context, productID int64) (*domain.Inventory, error)
}
