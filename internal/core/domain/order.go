package domain

import "time"

type OrderStatus string

const (
	OrderStatusCompleted  OrderStatus = "Completed"
	OrderStatusInProgress OrderStatus = "Inprogress"
	OrderStatusCancelled  OrderStatus = "Cancelled"
	OrderStatusReturned   OrderStatus = "Returned"
)

type Order struct {
	ID         int64
	Date       time.Time
	CustomerID int64
	SellerID   int64
	Status     OrderStatus
}

type OrderItem struct {
	ID           int64
	OrderID      int64
	ProductID    int64
	Quantity     int
	PricePerUnit float64
	TotalValue   float64
}
