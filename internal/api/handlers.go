package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"ordersvc/internal/api/middleware"
	"ordersvc/internal/order"
	"ordersvc/internal/service"
)

const (
	headerIdempotencyKey = "Idempotency-Key"
	maxOrderBodyBytes    = 1 << 20
)

// OrderRequest documents the order payload. The handler accepts any JSON
// object; keys beyond these are returned unchanged.
type OrderRequest struct {
	ID       string         `json:"id" example:"A123"`
	Name     string         `json:"name" example:"John Doe"`
	Address  AddressRequest `json:"address"`
	Price    string         `json:"price" example:"1000"`
	Currency string         `json:"currency" example:"USD" enums:"TWD,USD"`
}

// AddressRequest documents the nested address object.
type AddressRequest struct {
	City     string `json:"city" example:"Taipei"`
	District string `json:"district" example:"Zhongzheng"`
	Street   string `json:"street" example:"Xinyi Road"`
}

// HandleCreateOrder godoc
// @Summary Validate and normalize an order
// @Description Checks the order structure and business rules, then converts USD prices to TWD at the fixed rate. Unknown fields are echoed back unchanged.
// @Tags orders
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Replays return the first result instead of converting again"
// @Param request body OrderRequest true "Order record"
// @Success 200 {object} OrderRequest "Normalized order (price in TWD)"
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Malformed payload or internal error"
// @Router /api/orders [post]
func HandleCreateOrder(svc service.OrderServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := decodeOrder(http.MaxBytesReader(w, r.Body, maxOrderBodyBytes))
		if err != nil {
			writeInternalError(w, err)
			return
		}

		out, err := svc.ProcessOrder(r.Context(), service.ProcessRequest{
			RequestID:      middleware.RequestIDFromContext(r.Context()),
			IdempotencyKey: strings.TrimSpace(r.Header.Get(headerIdempotencyKey)),
			Record:         rec,
		})
		if err != nil {
			if order.IsValidation(err) {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, out)
	}
}

var errNotObject = errors.New("order payload must be a JSON object")

// decodeOrder reads a single JSON object. Numbers are kept as json.Number
// so pass-through fields are echoed without reformatting.
func decodeOrder(body io.Reader) (order.Record, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("invalid JSON: trailing data")
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, errNotObject
	}
	return order.Record(obj), nil
}
