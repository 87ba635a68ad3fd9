package storage

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/rl1809/sale-recorder/internal/core/domain"
)

func getMySQLDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/sales?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	return db
}

// setupMySQLFixture installs schema plus one product with the given stock.
// Reference rows for customer 2 and seller 5 are shared across tests.
func setupMySQLFixture(t *testing.T, db *sql.DB, productID int64, stock int) *MySQLAdapter {
	t.Helper()
	ctx := context.Background()
	adapter := NewMySQLAdapter(db)

	if err := adapter.InitSchema(ctx); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	db.ExecContext(ctx, `INSERT IGNORE INTO customers (customer_id, first_name, last_name, state) VALUES (2, 'Test', 'Customer', 'SP')`)
	db.ExecContext(ctx, `INSERT IGNORE INTO sellers (seller_id, seller_name, origin) VALUES (5, 'Test Seller', 'online')`)

	db.ExecContext(ctx, `DELETE FROM order_items WHERE product_id = ?`, productID)
	db.ExecContext(ctx, `DELETE FROM inventory WHERE product_id = ?`, productID)
	db.ExecContext(ctx, `DELETE FROM products WHERE product_id = ?`, productID)

	if _, err := db.ExecContext(ctx, `
		INSERT INTO products (product_id, product_name, price, cogs, category_id)
		VALUES (?, 'test product', 50.00, 32.50, NULL)`, productID); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	if _, err := db.ExecContext(ctx, `
		INSERT INTO inventory (inventory_id, product_id, stock, warehouse_id, last_stock_date)
		VALUES (?, ?, ?, 1, ?)`, productID, productID, stock, time.Now()); err != nil {
		t.Fatalf("seed inventory: %v", err)
	}

	return adapter
}

func cleanMySQLOrders(t *testing.T, db *sql.DB, orderIDs ...int64) {
	t.Helper()
	ctx := context.Background()
	for _, id := range orderIDs {
		db.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = ?`, id)
		db.ExecContext(ctx, `DELETE FROM orders WHERE order_id = ?`, id)
	}
}

func TestMySQLRecordSale_Success(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := setupMySQLFixture(t, db, 101, 20)
	cleanMySQLOrders(t, db, 25005)
	defer cleanMySQLOrders(t, db, 25005)

	rec, err := adapter.RecordSale(ctx, domain.Sale{
		OrderID: 25005, CustomerID: 2, SellerID: 5,
		OrderItemID: 25004, ProductID: 101, Quantity: 14,
	}, time.Now())
	if err != nil {
		t.Fatalf("RecordSale failed: %v", err)
	}
	if rec.ProductName != "test product" {
		t.Errorf("unexpected product name: %s", rec.ProductName)
	}
	if rec.Line.TotalValue != 700.00 {
		t.Errorf("expected total 700.00, got %.2f", rec.Line.TotalValue)
	}

	var stock int
	db.QueryRowContext(ctx, `SELECT stock FROM inventory WHERE product_id = 101`).Scan(&stock)
	if stock != 6 {
		t.Errorf("expected stock 6, got %d", stock)
	}

	var count int
	db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders WHERE order_id = 25005 AND customer_id = 2 AND seller_id = 5`).Scan(&count)
	if count != 1 {
		t.Error("order 25005 not found")
	}

	var quantity int
	var total float64
	err = db.QueryRowContext(ctx, `
		SELECT quantity, total_value FROM order_items WHERE order_item_id = 25004`,
	).Scan(&quantity, &total)
	if err != nil {
		t.Fatalf("order item 25004 not found: %v", err)
	}
	if quantity != 14 || total != 700.00 {
		t.Errorf("expected quantity 14 / total 700.00, got %d / %.2f", quantity, total)
	}
}

func TestMySQLRecordSale_InsufficientStock(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := setupMySQLFixture(t, db, 102, 5)
	cleanMySQLOrders(t, db, 25105)
	defer cleanMySQLOrders(t, db, 25105)

	_, err := adapter.RecordSale(ctx, domain.Sale{
		OrderID: 25105, CustomerID: 2, SellerID: 5,
		OrderItemID: 25104, ProductID: 102, Quantity: 14,
	}, time.Now())
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got: %v", err)
	}

	var stock int
	db.QueryRowContext(ctx, `SELECT stock FROM inventory WHERE product_id = 102`).Scan(&stock)
	if stock != 5 {
		t.Errorf("stock changed on rejected sale: %d", stock)
	}

	var count int
	db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders WHERE order_id = 25105`).Scan(&count)
	if count != 0 {
		t.Error("order row written on rejected sale")
	}
}

func TestMySQLRecordSale_DuplicateOrderID(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := setupMySQLFixture(t, db, 103, 20)
	cleanMySQLOrders(t, db, 25205)
	defer cleanMySQLOrders(t, db, 25205)

	sale := domain.Sale{
		OrderID: 25205, CustomerID: 2, SellerID: 5,
		OrderItemID: 25204, ProductID: 103, Quantity: 3,
	}
	if _, err := adapter.RecordSale(ctx, sale, time.Now()); err != nil {
		t.Fatalf("first sale failed: %v", err)
	}

	sale.OrderItemID = 25206
	_, err := adapter.RecordSale(ctx, sale, time.Now())
	if !errors.Is(err, domain.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got: %v", err)
	}

	// The failed second call must not decrement again.
	var stock int
	db.QueryRowContext(ctx, `SELECT stock FROM inventory WHERE product_id = 103`).Scan(&stock)
	if stock != 17 {
		t.Errorf("expected stock 17, got %d", stock)
	}
}

func TestMySQLRecordSale_UnknownProduct(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	adapter := NewMySQLAdapter(db)
	if err := adapter.InitSchema(context.Background()); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	_, err := adapter.RecordSale(context.Background(), domain.Sale{
		OrderID: 25305, OrderItemID: 25304, ProductID: 999999, Quantity: 1,
	}, time.Now())
	if !errors.Is(err, domain.ErrUnknownProduct) {
		t.Fatalf("expected ErrUnknownProduct, got: %v", err)
	}
}

func TestMySQLRecordSale_UnknownInventory(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := setupMySQLFixture(t, db, 104, 10)

	// Product without any inventory row.
	db.ExecContext(ctx, `DELETE FROM inventory WHERE product_id = 104`)

	_, err := adapter.RecordSale(ctx, domain.Sale{
		OrderID: 25405, CustomerID: 2, SellerID: 5,
		OrderItemID: 25404, ProductID: 104, Quantity: 1,
	}, time.Now())
	if !errors.Is(err, domain.ErrUnknownInventory) {
		t.Fatalf("expected ErrUnknownInventory, got: %v", err)
	}
}

func TestMySQLRecordSale_ConcurrentOversell(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := setupMySQLFixture(t, db, 105, 10)
	orderIDs := []int64{25505, 25506}
	cleanMySQLOrders(t, db, orderIDs...)
	defer cleanMySQLOrders(t, db, orderIDs...)

	var successCount atomic.Int32
	var soldOutCount atomic.Int32
	var wg sync.WaitGroup

	for i, orderID := range orderIDs {
		wg.Add(1)
		go func(orderID int64, n int) {
			defer wg.Done()
			_, err := adapter.RecordSale(ctx, domain.Sale{
				OrderID: orderID, CustomerID: 2, SellerID: 5,
				OrderItemID: orderID, ProductID: 105, Quantity: 6,
			}, time.Now())
			if err == nil {
				successCount.Add(1)
			} else if errors.Is(err, domain.ErrInsufficientStock) {
				soldOutCount.Add(1)
			} else {
				t.Errorf("request %d: unexpected error: %v", n, err)
			}
		}(orderID, i)
	}
	wg.Wait()

	if successCount.Load() != 1 || soldOutCount.Load() != 1 {
		t.Errorf("expected 1 success / 1 sold-out, got %d/%d",
			successCount.Load(), soldOutCount.Load())
	}

	var stock int
	db.QueryRowContext(ctx, `SELECT stock FROM inventory WHERE product_id = 105`).Scan(&stock)
	if stock != 4 {
		t.Errorf("expected stock 4, got %d", stock)
	}
}

func TestMySQLGetInventory(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := setupMySQLFixture(t, db, 106, 50)

	inv, err := adapter.GetInventory(ctx, 106)
	if err != nil {
		t.Fatalf("GetInventory failed: %v", err)
	}
	if inv == nil {
		t.Fatal("expected inventory, got nil")
	}
	if inv.Stock != 50 {
		t.Errorf("expected stock 50, got %d", inv.Stock)
	}

	absent, err := adapter.GetInventory(ctx, 999999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if absent != nil {
		t.Error("expected nil for nonexistent product")
	}
}
