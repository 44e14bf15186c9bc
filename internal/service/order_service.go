package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"ordersvc/internal/config"
	"ordersvc/internal/order"
)

// OrderServiceInterface defines the operations available for order intake.
type OrderServiceInterface interface {
	ProcessOrder(ctx context.Context, req ProcessRequest) (order.Record, error)
}

// Processor validates and converts a single order record.
type Processor interface {
	Process(r order.Record) (order.Record, error)
}

// Enqueuer publishes audit tasks for normalized orders.
type Enqueuer interface {
	EnqueueNormalized(ctx context.Context, payload OrderNormalizedPayload) error
}

// ProcessRequest carries one submitted order and its request metadata.
type ProcessRequest struct {
	RequestID      string
	IdempotencyKey string
	Record         order.Record
}

// OrderService runs submitted orders through the pipeline. Results of keyed
// requests are cached so a replayed request is not converted twice.
type OrderService struct {
	pipeline       Processor
	enqueuer       Enqueuer
	cache          *redis.Client
	log            *zap.SugaredLogger
	idempotencyTTL time.Duration
}

// NewOrderService creates a new OrderService. cache and enqueuer may be nil.
func NewOrderService(pipeline Processor, enqueuer Enqueuer, cache *redis.Client, logger *zap.SugaredLogger, cacheCfg config.CacheConfig) *OrderService {
	return &OrderService{
		pipeline:       pipeline,
		enqueuer:       enqueuer,
		cache:          cache,
		log:            logger,
		idempotencyTTL: time.Duration(cacheCfg.IdempotencyTTLSec) * time.Second,
	}
}

// ProcessOrder validates and converts req.Record. Validation errors from the
// pipeline are returned unchanged.
func (s *OrderService) ProcessOrder(ctx context.Context, req ProcessRequest) (order.Record, error) {
	if req.IdempotencyKey != "" {
		if cached, ok := s.cacheGetResult(ctx, req.IdempotencyKey); ok {
			s.log.Infow("Replaying cached order result",
				"request_id", req.RequestID,
				"idempotency_key", req.IdempotencyKey)
			return cached, nil
		}
	}

	// Captured before the pipeline rewrites the price.
	originalPrice, _ := req.Record.String(order.FieldPrice)

	// The converter rewrites price in place; keep the caller's record intact.
	out, err := s.pipeline.Process(req.Record.Clone())
	if err != nil {
		if order.IsValidation(err) {
			s.log.Infow("Order rejected", "request_id", req.RequestID, "reason", err.Error())
		} else {
			s.log.Errorw("Order processing failed", "request_id", req.RequestID, "error", err)
		}
		return nil, err
	}

	if req.IdempotencyKey != "" {
		s.cacheSetResult(ctx, req.IdempotencyKey, out)
	}
	s.publishNormalized(ctx, req.RequestID, originalPrice, out)

	return out, nil
}

func (s *OrderService) publishNormalized(ctx context.Context, requestID, originalPrice string, out order.Record) {
	if s.enqueuer == nil {
		return
	}

	id, _ := out.String(order.FieldID)
	currency, _ := out.String(order.FieldCurrency)
	price, _ := out.String(order.FieldPrice)
	payload := OrderNormalizedPayload{
		RequestID:     requestID,
		OrderID:       id,
		Currency:      currency,
		OriginalPrice: originalPrice,
		PriceTWD:      price,
	}

	if err := s.enqueuer.EnqueueNormalized(ctx, payload); err != nil {
		s.log.Warnw("Failed to enqueue audit task", "request_id", requestID, "order_id", id, "error", err)
	}
}

var _ OrderServiceInterface = (*OrderService)(nil)
