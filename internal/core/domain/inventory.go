package domain

import "time"

type Inventory struct {
	ID            int64
	ProductID     int64
	Stock         int
	WarehouseID   int64
	LastStockDate time.Time
}
