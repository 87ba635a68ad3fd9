package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rl1809/sale-recorder/internal/core/domain"
)

const pgUniqueViolation = "23505"

type PostgresAdapter struct {
	pool *pgxpool.Pool
}

func NewPostgresAdapter(pool *pgxpool.Pool) *PostgresAdapter {
	return &PostgresAdapter{pool: pool}
}

func (p *PostgresAdapter) InitSchema(ctx context.Context) error {
	for _, ddl := range Schemas() {
		if _, err := p.pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

func (p *PostgresAdapter) RecordSale(ctx context.Context, sale domain.Sale, at time.Time) (*domain.SaleRecord, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var name string
	var price float64
	err = tx.QueryRow(ctx, `
		SELECT product_name, price FROM products WHERE product_id = $1`,
		sale.ProductID,
	).Scan(&name, &price)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("product %d: %w", sale.ProductID, domain.ErrUnknownProduct)
	}
	if err != nil {
		return nil, fmt.Errorf("query product: %w", err)
	}

	var invID int64
	var stock int
	err = tx.QueryRow(ctx, `
		SELECT inventory_id, stock FROM inventory
		WHERE product_id = $1 ORDER BY inventory_id LIMIT 1 FOR UPDATE`,
		sale.ProductID,
	).Scan(&invID, &stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("product %d: %w", sale.ProductID, domain.ErrUnknownInventory)
	}
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}

	if stock < sale.Quantity {
		return nil, fmt.Errorf("product %q: %w", name, domain.ErrInsufficientStock)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (order_id, order_date, customer_id, seller_id, order_status)
		VALUES ($1, $2, $3, $4, $5)`,
		sale.OrderID, at, sale.CustomerID, sale.SellerID, domain.OrderStatusCompleted,
	)
	if err != nil {
		if isPgDup(err) {
			return nil, fmt.Errorf("order %d: %w", sale.OrderID, domain.ErrDuplicateID)
		}
		return nil, fmt.Errorf("insert order: %w", err)
	}

	total := price * float64(sale.Quantity)
	_, err = tx.Exec(ctx, `
		INSERT INTO order_items (order_item_id, order_id, product_id, quantity, price_per_unit, total_value)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		sale.OrderItemID, sale.OrderID, sale.ProductID, sale.Quantity, price, total,
	)
	if err != nil {
		if isPgDup(err) {
			return nil, fmt.Errorf("order item %d: %w", sale.OrderItemID, domain.ErrDuplicateID)
		}
		return nil, fmt.Errorf("insert order item: %w", err)
	}

	result, err := tx.Exec(ctx, `
		UPDATE inventory
		SET stock = stock - $1
		WHERE inventory_id = $2 AND stock >= $1`,
		sale.Quantity, invID,
	)
	if err != nil {
		return nil, fmt.Errorf("update inventory: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, fmt.Errorf("product %q: %w", name, domain.ErrInsufficientStock)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &domain.SaleRecord{
		ProductName: name,
		Order: domain.Order{
			ID:         sale.OrderID,
			Date:       at,
			CustomerID: sale.CustomerID,
			SellerID:   sale.SellerID,
			Status:     domain.OrderStatusCompleted,
		},
		Line: domain.OrderItem{
			ID:           sale.OrderItemID,
			OrderID:      sale.OrderID,
			ProductID:    sale.ProductID,
			Quantity:     sale.Quantity,
			PricePerUnit: price,
			TotalValue:   total,
		},
	}, nil
}

func (p *PostgresAdapter) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	var prod domain.Product
	var category *int64
	err := p.pool.QueryRow(ctx, `
		SELECT product_id, product_name, price, cogs, category_id
		FROM products WHERE product_id = $1`, productID,
	).Scan(&prod.ID, &prod.Name, &prod.Price, &prod.COGS, &category)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query product: %w", err)
	}
	if category != nil {
		prod.CategoryID = *category
	}
	return &prod, nil
}

func (p *PostgresAdapter) GetInventory(ctx context.Context, productID int64) (*domain.Inventory, error) {
	var inv domain.Inventory
	var warehouse *int64
	var lastStock *time.Time
	err := p.pool.QueryRow(ctx, `
		SELECT inventory_id, product_id, stock, warehouse_id, last_stock_date
		FROM inventory WHERE product_id = $1 ORDER BY inventory_id LIMIT 1`, productID,
	).Scan(&inv.ID, &inv.ProductID, &inv.Stock, &warehouse, &lastStock)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}
	if warehouse != nil {
		inv.WarehouseID = *warehouse
	}
	if lastStock != nil {
		inv.LastStockDate = *lastStock
	}
	return &inv, nil
}

func (p *PostgresAdapter) Exec(ctx context.Context, query string, args ...interface{}) error {
	_, err := p.pool.Exec(ctx, query, args...)
	return err
}

func (p *PostgresAdapter) Driver() string { return "postgres" }

func (p *PostgresAdapter) Close() { p.pool.Close() }

func isPgDup(err error) bool {
	var pe *pgconn.PgError
	return errors.As(err, &pe) && pe.Code == pgUniqueViolation
}
