package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/rl1809/sale-recorder/internal/adapter/storage"
	"github.com/rl1809/sale-recorder/internal/config"
	"github.com/rl1809/sale-recorder/internal/core/domain"
)

// Bulk catalog loader: owns the reference tables the sale recorder only reads
// (category, customers, sellers, products, payments, shippings) and the
// initial inventory counts. Wipes and reloads everything on each run.
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		log.Fatal(err)
	}
}

func run(configPath string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dsn := cfg.Store.MySQL
	if cfg.Store.Driver == "postgres" {
		dsn = cfg.Store.Postgres
	}
	store, err := storage.Open(ctx, cfg.Store.Driver, dsn)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.InitSchema(ctx); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	// Child tables first.
	for _, table := range []string{
		"shippings", "payments", "order_items", "orders",
		"inventory", "products", "sellers", "customers", "category",
	} {
		if err := store.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	log.Println("cleared existing catalog")

	exec := func(pgQuery, mysqlQuery string, args ...interface{}) error {
		query := pgQuery
		if store.Driver() == "mysql" {
			query = mysqlQuery
		}
		return store.Exec(ctx, query, args...)
	}

	for _, c := range []domain.Category{
		{ID: 1, Name: "electronics"},
		{ID: 2, Name: "clothing"},
		{ID: 3, Name: "home & kitchen"},
	} {
		if err := exec(
			`INSERT INTO category (category_id, category_name) VALUES ($1, $2)`,
			`INSERT INTO category (category_id, category_name) VALUES (?, ?)`,
			c.ID, c.Name,
		); err != nil {
			return fmt.Errorf("seed category: %w", err)
		}
	}

	for _, c := range []domain.Customer{
		{ID: 1, FirstName: "Ana", LastName: "Silva", State: "SP"},
		{ID: 2, FirstName: "Bruno", LastName: "Costa", State: "RJ"},
		{ID: 3, FirstName: "Carla", LastName: "Gomes", State: "MG"},
	} {
		if err := exec(
			`INSERT INTO customers (customer_id, first_name, last_name, state) VALUES ($1, $2, $3, $4)`,
			`INSERT INTO customers (customer_id, first_name, last_name, state) VALUES (?, ?, ?, ?)`,
			c.ID, c.FirstName, c.LastName, c.State,
		); err != nil {
			return fmt.Errorf("seed customer: %w", err)
		}
	}

	for _, s := range []domain.Seller{
		{ID: 1, Name: "TechNow", Origin: "online"},
		{ID: 5, Name: "MegaStore", Origin: "online"},
	} {
		if err := exec(
			`INSERT INTO sellers (seller_id, seller_name, origin) VALUES ($1, $2, $3)`,
			`INSERT INTO sellers (seller_id, seller_name, origin) VALUES (?, ?, ?)`,
			s.ID, s.Name, s.Origin,
		); err != nil {
			return fmt.Errorf("seed seller: %w", err)
		}
	}

	for _, p := range []domain.Product{
		{ID: 1, Name: "wireless mouse", Price: 50.00, COGS: 32.50, CategoryID: 1},
		{ID: 2, Name: "usb-c cable", Price: 12.99, COGS: 4.20, CategoryID: 1},
		{ID: 3, Name: "cotton t-shirt", Price: 19.90, COGS: 7.10, CategoryID: 2},
	} {
		if err := exec(
			`INSERT INTO products (product_id, product_name, price, cogs, category_id) VALUES ($1, $2, $3, $4, $5)`,
			`INSERT INTO products (product_id, product_name, price, cogs, category_id) VALUES (?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.Price, p.COGS, p.CategoryID,
		); err != nil {
			return fmt.Errorf("seed product: %w", err)
		}
	}

	today := time.Now()
	for _, inv := range []domain.Inventory{
		{ID: 1, ProductID: 1, Stock: 20, WarehouseID: 1, LastStockDate: today},
		{ID: 2, ProductID: 2, Stock: 150, WarehouseID: 1, LastStockDate: today},
		{ID: 3, ProductID: 3, Stock: 75, WarehouseID: 2, LastStockDate: today},
	} {
		if err := exec(
			`INSERT INTO inventory (inventory_id, product_id, stock, warehouse_id, last_stock_date) VALUES ($1, $2, $3, $4, $5)`,
			`INSERT INTO inventory (inventory_id, product_id, stock, warehouse_id, last_stock_date) VALUES (?, ?, ?, ?, ?)`,
			inv.ID, inv.ProductID, inv.Stock, inv.WarehouseID, inv.LastStockDate,
		); err != nil {
			return fmt.Errorf("seed inventory: %w", err)
		}
	}

	// One historical order so payments and shippings are not empty.
	order := domain.Order{
		ID:         1000,
		Date:       today.AddDate(0, 0, -7),
		CustomerID: 1,
		SellerID:   1,
		Status:     domain.OrderStatusCompleted,
	}
	if err := exec(
		`INSERT INTO orders (order_id, order_date, customer_id, seller_id, order_status) VALUES ($1, $2, $3, $4, $5)`,
		`INSERT INTO orders (order_id, order_date, customer_id, seller_id, order_status) VALUES (?, ?, ?, ?, ?)`,
		order.ID, order.Date, order.CustomerID, order.SellerID, string(order.Status),
	); err != nil {
		return fmt.Errorf("seed order: %w", err)
	}
	line := domain.OrderItem{
		ID:           1000,
		OrderID:      order.ID,
		ProductID:    2,
		Quantity:     3,
		PricePerUnit: 12.99,
		TotalValue:   38.97,
	}
	if err := exec(
		`INSERT INTO order_items (order_item_id, order_id, product_id, quantity, price_per_unit, total_value) VALUES ($1, $2, $3, $4, $5, $6)`,
		`INSERT INTO order_items (order_item_id, order_id, product_id, quantity, price_per_unit, total_value) VALUES (?, ?, ?, ?, ?, ?)`,
		line.ID, line.OrderID, line.ProductID, line.Quantity, line.PricePerUnit, line.TotalValue,
	); err != nil {
		return fmt.Errorf("seed order item: %w", err)
	}
	payment := domain.Payment{
		ID:      uuid.New().String(),
		OrderID: order.ID,
		Date:    order.Date,
		Status:  "successful",
	}
	if err := exec(
		`INSERT INTO payments (payment_id, order_id, payment_date, payment_status) VALUES ($1, $2, $3, $4)`,
		`INSERT INTO payments (payment_id, order_id, payment_date, payment_status) VALUES (?, ?, ?, ?)`,
		payment.ID, payment.OrderID, payment.Date, payment.Status,
	); err != nil {
		return fmt.Errorf("seed payment: %w", err)
	}
	shipping := domain.Shipping{
		ID:           uuid.New().String(),
		OrderID:      order.ID,
		ShippingDate: order.Date.AddDate(0, 0, 1),
		Provider:     "fedex",
		Status:       "delivered",
	}
	if err := exec(
		`INSERT INTO shippings (shipping_id, order_id, shipping_date, return_date, shipping_provider, delivery_status) VALUES ($1, $2, $3, $4, $5, $6)`,
		`INSERT INTO shippings (shipping_id, order_id, shipping_date, return_date, shipping_provider, delivery_status) VALUES (?, ?, ?, ?, ?, ?)`,
		shipping.ID, shipping.OrderID, shipping.ShippingDate, shipping.ReturnDate, shipping.Provider, shipping.Status,
	); err != nil {
		return fmt.Errorf("seed shipping: %w", err)
	}

	log.Println("catalog loaded")
	return nil
}
