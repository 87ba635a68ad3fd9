package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/rl1809/sale-recorder/internal/adapter/storage"
	"github.com/rl1809/sale-recorder/internal/config"
	"github.com/rl1809/sale-recorder/internal/core/domain"
	"github.com/rl1809/sale-recorder/internal/core/service"
)

const (
	productID     = int64(9001)
	inventoryID   = int64(9001)
	initialStock  = 20
	totalRequests = 50
	idBase        = int64(900000)
)

// Hammers one product with more concurrent sales than it has stock and checks
// that exactly initialStock of them land.
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	dsn := cfg.Store.MySQL
	if cfg.Store.Driver == "postgres" {
		dsn = cfg.Store.Postgres
	}
	store, err := storage.Open(ctx, cfg.Store.Driver, dsn)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	if err := store.InitSchema(ctx); err != nil {
		log.Fatalf("init schema: %v", err)
	}
	if err := resetFixture(ctx, store); err != nil {
		log.Fatalf("reset fixture: %v", err)
	}

	saleService := service.NewSaleService(store, nil)

	// Max latency of 10 seconds, significant figures of 3
	histogram := hdrhistogram.New(1, 10000000000, 3)
	var histMu sync.Mutex

	var successCount atomic.Int32
	var soldOutCount atomic.Int32
	var errorCount atomic.Int32

	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			opStart := time.Now()
			_, err := saleService.RecordSale(ctx, domain.Sale{
				OrderID:     idBase + int64(n),
				CustomerID:  1,
				SellerID:    1,
				OrderItemID: idBase + int64(n),
				ProductID:   productID,
				Quantity:    1,
			})
			latency := time.Since(opStart)

			histMu.Lock()
			histogram.RecordValue(latency.Microseconds())
			histMu.Unlock()

			switch {
			case err == nil:
				successCount.Add(1)
			case errors.Is(err, domain.ErrInsufficientStock):
				soldOutCount.Add(1)
			default:
				errorCount.Add(1)
				log.Printf("request %d: %v", n, err)
			}
		}(i)
	}

	wg.Wait()
	elapsed := time.Since(start)

	success := successCount.Load()
	soldOut := soldOutCount.Load()

	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Initial Stock:    %d\n", initialStock)
	fmt.Printf("Total Requests:   %d\n", totalRequests)
	fmt.Printf("Successful:       %d\n", success)
	fmt.Printf("Sold Out:         %d\n", soldOut)
	fmt.Printf("Errors:           %d\n", errorCount.Load())
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Printf("Mean Latency:     %v\n", time.Duration(histogram.Mean())*time.Microsecond)
	fmt.Printf("P95 Latency:      %v\n", time.Duration(histogram.ValueAtQuantile(95))*time.Microsecond)
	fmt.Printf("P99 Latency:      %v\n", time.Duration(histogram.ValueAtQuantile(99))*time.Microsecond)
	fmt.Println("==========================================")

	if success == int32(initialStock) && soldOut == int32(totalRequests-initialStock) {
		fmt.Printf("PASS: exactly %d sales succeeded, %d rejected\n", initialStock, totalRequests-initialStock)
	} else {
		fmt.Printf("FAIL: expected %d success/%d rejected, got %d/%d\n",
			initialStock, totalRequests-initialStock, success, soldOut)
	}

	inv, err := store.GetInventory(ctx, productID)
	if err != nil {
		log.Fatalf("final inventory read: %v", err)
	}
	fmt.Printf("Final Stock: %d\n", inv.Stock)

	if inv.Stock == 0 {
		fmt.Println("PASS: stock depleted to 0")
	} else {
		fmt.Printf("FAIL: expected stock 0, got %d\n", inv.Stock)
	}
}

// resetFixture clears previous runs and installs the stress product with a
// fresh stock count.
func resetFixture(ctx context.Context, store storage.Store) error {
	exec := func(pgQuery, mysqlQuery string, args ...interface{}) error {
		query := pgQuery
		if store.Driver() == "mysql" {
			query = mysqlQuery
		}
		return store.Exec(ctx, query, args...)
	}

	if err := exec(
		`INSERT INTO customers (customer_id, first_name, last_name, state) VALUES (1, 'Stress', 'Tester', 'SP') ON CONFLICT DO NOTHING`,
		`INSERT IGNORE INTO customers (customer_id, first_name, last_name, state) VALUES (1, 'Stress', 'Tester', 'SP')`,
	); err != nil {
		return err
	}
	if err := exec(
		`INSERT INTO sellers (seller_id, seller_name, origin) VALUES (1, 'Stress Seller', 'online') ON CONFLICT DO NOTHING`,
		`INSERT IGNORE INTO sellers (seller_id, seller_name, origin) VALUES (1, 'Stress Seller', 'online')`,
	); err != nil {
		return err
	}

	if err := exec(
		`DELETE FROM order_items WHERE product_id = $1`,
		`DELETE FROM order_items WHERE product_id = ?`,
		productID,
	); err != nil {
		return err
	}
	if err := exec(
		`DELETE FROM orders WHERE order_id >= $1`,
		`DELETE FROM orders WHERE order_id >= ?`,
		idBase,
	); err != nil {
		return err
	}
	if err := exec(
		`DELETE FROM inventory WHERE product_id = $1`,
		`DELETE FROM inventory WHERE product_id = ?`,
		productID,
	); err != nil {
		return err
	}
	if err := exec(
		`DELETE FROM products WHERE product_id = $1`,
		`DELETE FROM products WHERE product_id = ?`,
		productID,
	); err != nil {
		return err
	}

	if err := exec(
		`INSERT INTO products (product_id, product_name, price, cogs, category_id) VALUES ($1, $2, $3, $4, NULL)`,
		`INSERT INTO products (product_id, product_name, price, cogs, category_id) VALUES (?, ?, ?, ?, NULL)`,
		productID, "stress-test item", 50.00, 32.50,
	); err != nil {
		return err
	}
	return exec(
		`INSERT INTO inventory (inventory_id, product_id, stock, warehouse_id, last_stock_date) VALUES ($1, $2, $3, 1, $4)`,
		`INSERT INTO inventory (inventory_id, product_id, stock, warehouse_id, last_stock_date) VALUES (?, ?, ?, 1, ?)`,
		inventoryID, productID, initialStock, time.Now(),
	)
}
