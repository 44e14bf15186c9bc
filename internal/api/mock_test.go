package api

import (
	"context"

	"ordersvc/internal/order"
	"ordersvc/internal/service"
)

// mockOrderService implements service.OrderServiceInterface for testing.
type mockOrderService struct {
	processOrderFunc func(ctx context.Context, req service.ProcessRequest) (order.Record, error)
}

func (m *mockOrderService) ProcessOrder(ctx context.Context, req service.ProcessRequest) (order.Record, error) {
	return m.processOrderFunc(ctx, req)
}
