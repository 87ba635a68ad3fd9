package handler

import (
	"context"
	"errors"

	"github.com/rl1809/sale-recorder/internal/adapter/handler/pb"
	"github.com/rl1809/sale-recorder/internal/core/domain"
	"github.com/rl1809/sale-recorder/internal/core/service"
)

type GRPCHandler struct {
	pb.UnimplementedSaleRecorderServer
	saleService *service.SaleService
}

func NewGRPCHandler(saleService *service.SaleService) *GRPCHandler {
	return &GRPCHandler{saleService: saleService}
}

func (h *GRPCHandler) RecordSale(ctx context.Context, req *pb.RecordSaleRequest) (*pb.RecordSaleResponse, error) {
	conf, err := h.saleService.RecordSale(ctx, domain.Sale{
		OrderID:     req.GetOrderId(),
		CustomerID:  req.GetCustomerId(),
		SellerID:    req.GetSellerId(),
		OrderItemID: req.GetOrderItemId(),
		ProductID:   req.GetProductId(),
		Quantity:    int(req.GetQuantity()),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) ||
			errors.Is(err, domain.ErrDuplicateID) ||
			errors.Is(err, domain.ErrUnknownProduct) ||
			errors.Is(err, domain.ErrUnknownInventory) {
			return &pb.RecordSaleResponse{
				Success: false,
				Message: err.Error(),
			}, nil
		}
		return &pb.RecordSaleResponse{
			Success: false,
			Message: "internal error",
		}, nil
	}

	return &pb.RecordSaleResponse{
		Success: true,
		Message: conf.Message,
	}, nil
}
