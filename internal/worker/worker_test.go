package worker

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"ordersvc/internal/service"
)

var samplePayload = service.OrderNormalizedPayload{
	RequestID:     "req-1",
	OrderID:       "A123",
	Currency:      "USD",
	OriginalPrice: "1000",
	PriceTWD:      "31000",
}

func TestOrderNormalizedHandler(t *testing.T) {
	t.Run("logs audit entry", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		handler := NewOrderNormalizedHandler(zap.New(core).Sugar())

		task, err := NewOrderNormalizedTask(samplePayload)
		require.NoError(t, err)

		require.NoError(t, handler(context.Background(), task))

		entries := logs.FilterMessage("Order normalized").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "A123", fields["order_id"])
		assert.Equal(t, "31000", fields["price_twd"])
	})

	t.Run("malformed payload is dropped", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		handler := NewOrderNormalizedHandler(zap.New(core).Sugar())

		task := asynq.NewTask(service.TaskTypeOrderNormalized, []byte("{not json"))
		assert.NoError(t, handler(context.Background(), task))
		assert.Equal(t, 1, logs.FilterMessage("Invalid task payload").Len())
	})
}

func TestAsynqEnqueuer_EnqueueNormalized(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	redisOpt := asynq.RedisClientOpt{Addr: mr.Addr()}
	client := asynq.NewClient(redisOpt)
	defer func() { _ = client.Close() }()

	enq := NewAsynqEnqueuer(client, 5, 10*time.Second)
	require.NoError(t, enq.EnqueueNormalized(context.Background(), samplePayload))

	inspector := asynq.NewInspector(redisOpt)
	defer func() { _ = inspector.Close() }()

	tasks, err := inspector.ListPendingTasks("default")
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	assert.Equal(t, service.TaskTypeOrderNormalized, tasks[0].Type)
	assert.Equal(t, 5, tasks[0].MaxRetry)

	var got service.OrderNormalizedPayload
	require.NoError(t, json.Unmarshal(tasks[0].Payload, &got))
	assert.Equal(t, samplePayload, got)
}
