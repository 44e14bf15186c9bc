package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"ordersvc/internal/order"
)

const cacheKeyPrefixIdempotency = "order:idempotency:"

func idempotencyCacheKey(key string) string {
	return cacheKeyPrefixIdempotency + "{" + key + "}"
}

func (s *OrderService) cacheGetResult(ctx context.Context, key string) (order.Record, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, idempotencyCacheKey(key)).Bytes()
	if err != nil {
		return nil, false
	}

	rec, err := decodeRecord(raw)
	if err != nil {
		s.log.Warnw("Discarding unreadable cached result", "idempotency_key", key, "error", err)
		return nil, false
	}
	return rec, true
}

func (s *OrderService) cacheSetResult(ctx context.Context, key string, rec order.Record) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(rec)
	if err != nil {
		s.log.Warnw("Failed to encode result for cache", "idempotency_key", key, "error", err)
		return
	}

	if err := s.cache.Set(ctx, idempotencyCacheKey(key), data, s.idempotencyTTL).Err(); err != nil {
		s.log.Warnw("Failed to update cache", "idempotency_key", key, "error", err)
	}
}

func decodeRecord(raw []byte) (order.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var rec order.Record
	if err := dec.Decode(&rec); err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("cached result is not an object")
	}
	return rec, nil
}
