package domain

type Product struct {
	ID         int64
	Name       string
	Price      float64
	COGS       float64
	CategoryID int64
}
