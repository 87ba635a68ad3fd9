package domain

// Sale is the caller-supplied input for recording one sale. All identifiers
// are chosen by the caller; nothing is auto-generated.
type Sale struct {
	OrderID     int64
	CustomerID  int64
	SellerID    int64
	OrderItemID int64
	ProductID   int64
	Quantity    int
}

// SaleRecord is what the store reports back after the transaction commits.
type SaleRecord struct {
	ProductName string
	Order       Order
	Line        OrderItem
}

// Confirmation is the caller-facing result of a recorded sale.
type Confirmation struct {
	ProductName string
	Order       Order
	Line        OrderItem
	Message     string
}
