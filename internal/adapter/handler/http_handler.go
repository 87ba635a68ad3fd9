package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rl1809/sale-recorder/internal/core/domain"
	"github.com/rl1809/sale-recorder/internal/core/service"
)

type HTTPHandler struct {
	saleService *service.SaleService
}

type RecordSaleHTTPRequest struct {
	OrderID     int64 `json:"order_id"`
	CustomerID  int64 `json:"customer_id"`
	SellerID    int64 `json:"seller_id"`
	OrderItemID int64 `json:"order_item_id"`
	ProductID   int64 `json:"product_id"`
	Quantity    int   `json:"quantity"`
}

type RecordSaleHTTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewHTTPHandler(saleService *service.SaleService) *HTTPHandler {
	return &HTTPHandler{saleService: saleService}
}

func (h *HTTPHandler) RecordSale(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RecordSaleHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, RecordSaleHTTPResponse{
			Success: false,
			Message: "invalid request body",
		})
		return
	}

	if req.OrderID == 0 || req.OrderItemID == 0 || req.ProductID == 0 || req.Quantity <= 0 {
		writeJSON(w, http.StatusBadRequest, RecordSaleHTTPResponse{
			Success: false,
			Message: "missing required fields",
		})
		return
	}

	conf, err := h.saleService.RecordSale(r.Context(), domain.Sale{
		OrderID:     req.OrderID,
		CustomerID:  req.CustomerID,
		SellerID:    req.SellerID,
		OrderItemID: req.OrderItemID,
		ProductID:   req.ProductID,
		Quantity:    req.Quantity,
	})
	if err != nil {
		status := http.StatusInternalServerError
		message := "internal error"

		switch {
		case errors.Is(err, domain.ErrInsufficientStock):
			status = http.StatusConflict
			message = err.Error()
		case errors.Is(err, domain.ErrDuplicateID):
			status = http.StatusConflict
			message = err.Error()
		case errors.Is(err, domain.ErrUnknownProduct), errors.Is(err, domain.ErrUnknownInventory):
			status = http.StatusNotFound
			message = err.Error()
		}

		writeJSON(w, status, RecordSaleHTTPResponse{
			Success: false,
			Message: message,
		})
		return
	}

	writeJSON(w, http.StatusOK, RecordSaleHTTPResponse{
		Success: true,
		Message: conf.Message,
	})
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
