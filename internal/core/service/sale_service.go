package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rl1809/sale-recorder/internal/core/domain"
	"github.com/rl1809/sale-recorder/internal/port"
)

// SaleService records sales against the relational store. When a StockCache is
// configured it acts as a fast gate in front of the store: an atomic cache
// decrement rejects oversold requests early, and is compensated if the store
// transaction is rejected afterwards.
type SaleService struct {
	store port.SaleRepository
	cache port.StockCache
}

// NewSaleService builds the service. cache may be nil, in which case every
// request goes straight to the store.
func NewSaleService(store port.SaleRepository, cache port.StockCache) *SaleService {
	return &SaleService{store: store, cache: cache}
}

func (s *SaleService) RecordSale(ctx context.Context, sale domain.Sale) (*domain.Confirmation, error) {
	if sale.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", sale.Quantity)
	}

	if s.cache != nil {
		ok, err := s.cache.DecrementStock(ctx, sale.ProductID, sale.Quantity)
		if err != nil {
			return nil, fmt.Errorf("stock gate: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("product %d: %w", sale.ProductID, domain.ErrInsufficientStock)
		}
	}

	rec, err := s.store.RecordSale(ctx, sale, time.Now())
	if err != nil {
		if s.cache != nil {
			// The cache decrement went through but the store said no; put the
			// cached units back so later requests are not starved.
			if rbErr := s.cache.IncrementStock(ctx, sale.ProductID, sale.Quantity); rbErr != nil {
				return nil, fmt.Errorf("record sale: %w (stock gate rollback failed: %v)", err, rbErr)
			}
		}
		return nil, err
	}

	return &domain.Confirmation{
		ProductName: rec.ProductName,
		Order:       rec.Order,
		Line:        rec.Line,
		Message:     fmt.Sprintf("product %q sold successfully", rec.ProductName),
	}, nil
}
