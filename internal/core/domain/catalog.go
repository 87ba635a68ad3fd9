package domain

import "time"

// Reference entities owned by bulk catalog loading. The sale recorder reads
// products and inventory; the rest are never touched by it.

type Category struct {
	ID   int64
	Name string
}

type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	State     string
}

type Seller struct {
	ID     int64
	Name   string
	Origin string
}

type Payment struct {
	ID      string
	OrderID int64
	Date    time.Time
	Status  string
}

type Shipping struct {
	ID           string
	OrderID      int64
	ShippingDate time.Time
	ReturnDate   *time.Time
	Provider     string
	Status       string
}
