package domain

import "errors"

var (
	// ErrUnknownProduct means the product id has no catalog entry.
	ErrUnknownProduct = errors.New("unknown product")

	// ErrUnknownInventory means the product has no inventory row.
	ErrUnknownInventory = errors.New("no inventory record")

	// ErrInsufficientStock is the normal negative-path result: stock is lower
	// than the requested quantity, nothing was written.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrDuplicateID means a caller-supplied order or order-item id collides
	// with an existing row; the whole transaction was rolled back.
	ErrDuplicateID = errors.New("duplicate identifier")
)
