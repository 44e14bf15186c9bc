// Package worker implements background task handlers for order audit events.
package worker

import (
	"context"
	"encoding/json"
	"time"

	"ordersvc/internal/service"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// NewOrderNormalizedHandler returns a function to handle order:normalized tasks.
func NewOrderNormalizedHandler(logger *zap.SugaredLogger) func(context.Context, *asynq.Task) error {
	return func(_ context.Context, t *asynq.Task) error {
		var payload service.OrderNormalizedPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			logger.Errorw("Invalid task payload", "type", t.Type(), "error", err)
			return nil
		}

		logger.Infow("Order normalized",
			"request_id", payload.RequestID,
			"order_id", payload.OrderID,
			"currency", payload.Currency,
			"original_price", payload.OriginalPrice,
			"price_twd", payload.PriceTWD,
		)
		return nil
	}
}

// AsynqEnqueuer is responsible for enqueuing tasks to an Asynq queue with specific configurations for retries and timeouts.
type AsynqEnqueuer struct {
	client   *asynq.Client
	maxRetry int
	timeout  time.Duration
}

// NewAsynqEnqueuer creates a new AsynqEnqueuer with the given client, retry limit, and task timeout duration.
func NewAsynqEnqueuer(client *asynq.Client, maxRetry int, timeout time.Duration) *AsynqEnqueuer {
	return &AsynqEnqueuer{
		client:   client,
		maxRetry: maxRetry,
		timeout:  timeout,
	}
}

// NewOrderNormalizedTask builds an order:normalized task for payload.
func NewOrderNormalizedTask(payload service.OrderNormalizedPayload, opts ...asynq.Option) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(service.TaskTypeOrderNormalized, data, opts...), nil
}

// EnqueueNormalized enqueues an order:normalized task using Asynq.
func (e *AsynqEnqueuer) EnqueueNormalized(ctx context.Context, payload service.OrderNormalizedPayload) error {
	task, err := NewOrderNormalizedTask(payload,
		asynq.MaxRetry(e.maxRetry),
		asynq.Timeout(e.timeout),
	)
	if err != nil {
		return err
	}

	_, err = e.client.EnqueueContext(ctx, task)
	return err
}

var _ service.Enqueuer = (*AsynqEnqueuer)(nil)
