package storage

// DDL for the nine-table e-commerce schema. Statements are written in the
// dialect subset MySQL and Postgres both accept; identifiers are caller
// supplied, so no auto-increment columns anywhere.

func GetCategorySchema() string {
	return `
		CREATE TABLE IF NOT EXISTS category (
			category_id BIGINT PRIMARY KEY,
			category_name VARCHAR(255) NOT NULL
		);
	`
}

func GetCustomersSchema() string {
	return `
		CREATE TABLE IF NOT EXISTS customers (
			customer_id BIGINT PRIMARY KEY,
			first_name VARCHAR(255) NOT NULL,
			last_name VARCHAR(255) NOT NULL,
			state VARCHAR(255)
		);
	`
}

func GetSellersSchema() string {
	return `
		CREATE TABLE IF NOT EXISTS sellers (
			seller_id BIGINT PRIMARY KEY,
			seller_name VARCHAR(255) NOT NULL,
			origin VARCHAR(255)
		);
	`
}

func GetProductsSchema() string {
	return `
		CREATE TABLE IF NOT EXISTS products (
			product_id BIGINT PRIMARY KEY,
			product_name VARCHAR(255) NOT NULL,
			price DECIMAL(10, 2) NOT NULL,
			cogs DECIMAL(10, 2) NOT NULL,
			category_id BIGINT REFERENCES category(category_id)
		);
	`
}

func GetOrdersSchema() string {
	return `
		CREATE TABLE IF NOT EXISTS orders (
			order_id BIGINT PRIMARY KEY,
			order_date DATE NOT NULL,
			customer_id BIGINT REFERENCES customers(customer_id),
			seller_id BIGINT REFERENCES sellers(seller_id),
			order_status VARCHAR(32) NOT NULL
		);
	`
}

func GetOrderItemsSchema() string {
	return `
		CREATE TABLE IF NOT EXISTS order_items (
			order_item_id BIGINT PRIMARY KEY,
			order_id BIGINT REFERENCES orders(order_id),
			product_id BIGINT REFERENCES products(product_id),
			quantity INT NOT NULL,
			price_per_unit DECIMAL(10, 2) NOT NULL,
			total_value DECIMAL(10, 2) NOT NULL
		);
	`
}

func GetPaymentsSchema() string {
	return `
		CREATE TABLE IF NOT EXISTS payments (
			payment_id VARCHAR(64) PRIMARY KEY,
			order_id BIGINT REFERENCES orders(order_id),
			payment_date DATE,
			payment_status VARCHAR(64)
		);
	`
}

func GetShippingsSchema() string {
	return `
		CREATE TABLE IF NOT EXISTS shippings (
			shipping_id VARCHAR(64) PRIMARY KEY,
			order_id BIGINT REFERENCES orders(order_id),
			shipping_date DATE,
			return_date DATE,
			shipping_provider VARCHAR(255),
			delivery_status VARCHAR(64)
		);
	`
}

func GetInventorySchema() string {
	return `
		CREATE TABLE IF NOT EXISTS inventory (
			inventory_id BIGINT PRIMARY KEY,
			product_id BIGINT REFERENCES products(product_id),
			stock INT NOT NULL CHECK (stock >= 0),
			warehouse_id BIGINT,
			last_stock_date DATE
		);
	`
}

// Schemas returns the DDL in foreign-key dependency order.
func Schemas() []string {
	return []string{
		GetCategorySchema(),
		GetCustomersSchema(),
		GetSellersSchema(),
		GetProductsSchema(),
		GetOrdersSchema(),
		GetOrderItemsSchema(),
		GetPaymentsSchema(),
		GetShippingsSchema(),
		GetInventorySchema(),
	}
}
