package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/rl1809/sale-recorder/internal/core/domain"
)

const mysqlDupEntry = 1062

type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

// InitSchema creates the nine catalog tables if they do not exist yet.
func (m *MySQLAdapter) InitSchema(ctx context.Context) error {
	for _, ddl := range Schemas() {
		if _, err := m.db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

func (m *MySQLAdapter) RecordSale(ctx context.Context, sale domain.Sale, at time.Time) (*domain.SaleRecord, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var name string
	var price float64
	err = tx.QueryRowContext(ctx, `
		SELECT product_name, price FROM products WHERE product_id = ?`,
		sale.ProductID,
	).Scan(&name, &price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %d: %w", sale.ProductID, domain.ErrUnknownProduct)
	}
	if err != nil {
		return nil, fmt.Errorf("query product: %w", err)
	}

	// Lock the inventory row so concurrent sales of the same product serialize
	// here. Lowest inventory_id wins when the product sits in several warehouses.
	var invID int64
	var stock int
	err = tx.QueryRowContext(ctx, `
		SELECT inventory_id, stock FROM inventory
		WHERE product_id = ? ORDER BY inventory_id LIMIT 1 FOR UPDATE`,
		sale.ProductID,
	).Scan(&invID, &stock)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %d: %w", sale.ProductID, domain.ErrUnknownInventory)
	}
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}

	if stock < sale.Quantity {
		return nil, fmt.Errorf("product %q: %w", name, domain.ErrInsufficientStock)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (order_id, order_date, customer_id, seller_id, order_status)
		VALUES (?, ?, ?, ?, ?)`,
		sale.OrderID, at, sale.CustomerID, sale.SellerID, domain.OrderStatusCompleted,
	)
	if err != nil {
		if isMySQLDup(err) {
			return nil, fmt.Errorf("order %d: %w", sale.OrderID, domain.ErrDuplicateID)
		}
		return nil, fmt.Errorf("insert order: %w", err)
	}

	total := price * float64(sale.Quantity)
	_, err = tx.ExecContext(ctx, `
		INSERT INTO order_items (order_item_id, order_id, product_id, quantity, price_per_unit, total_value)
		VALUES (?, ?, ?, ?, ?, ?)`,
		sale.OrderItemID, sale.OrderID, sale.ProductID, sale.Quantity, price, total,
	)
	if err != nil {
		if isMySQLDup(err) {
			return nil, fmt.Errorf("order item %d: %w", sale.OrderItemID, domain.ErrDuplicateID)
		}
		return nil, fmt.Errorf("insert order item: %w", err)
	}

	// Conditional decrement: the WHERE re-checks stock at write time even
	// though the row is locked above.
	result, err := tx.ExecContext(ctx, `
		UPDATE inventory
		SET stock = stock - ?
		WHERE inventory_id = ? AND stock >= ?`,
		sale.Quantity, invID, sale.Quantity,
	)
	if err != nil {
		return nil, fmt.Errorf("update inventory: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return nil, fmt.Errorf("product %q: %w", name, domain.ErrInsufficientStock)
	}

	if err := tx.Commit(); err != nil {
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

func (m *MySQLAdapter) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	var p domain.Product
	var category sql.NullInt64
	err := m.db.QueryRowContext(ctx, `
		SELECT product_id, product_name, price, cogs, category_id
		FROM products WHERE product_id = ?`, productID,
	).Scan(&p.ID, &p.Name, &p.Price, &p.COGS, &category)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query product: %w", err)
	}
	p.CategoryID = category.Int64
	return &p, nil
}

func (m *MySQLAdapter) GetInventory(ctx context.Context, productID int64) (*domain.Inventory, error) {
	var inv domain.Inventory
	var warehouse sql.NullInt64
	var lastStock sql.NullTime
	err := m.db.QueryRowContext(ctx, `
		SELECT inventory_id, product_id, stock, warehouse_id, last_stock_date
		FROM inventory WHERE product_id = ? ORDER BY inventory_id LIMIT 1`, productID,
	).Scan(&inv.ID, &inv.ProductID, &inv.Stock, &warehouse, &lastStock)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}
	inv.WarehouseID = warehouse.Int64
	inv.LastStockDate = lastStock.Time
	return &inv, nil
}

func (m *MySQLAdapter) Exec(ctx context.Context, query string, args ...interface{}) error {
	_, err := m.db.ExecContext(ctx, query, args...)
	return err
}

func (m *MySQLAdapter) Driver() string { return "mysql" }

func (m *MySQLAdapter) Close() { m.db.Close() }

func isMySQLDup(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDupEntry
}
