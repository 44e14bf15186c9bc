package service

// TaskTypeOrderNormalized is the Asynq task type for accepted-order audit jobs.
const TaskTypeOrderNormalized = "order:normalized"

// OrderNormalizedPayload is the payload of an order:normalized task.
type OrderNormalizedPayload struct {
	RequestID     string `json:"request_id,omitempty"`
	OrderID       string `json:"order_id"`
	Currency      string `json:"currency"`
	OriginalPrice string `json:"original_price"`
	PriceTWD      string `json:"price_twd"`
}
