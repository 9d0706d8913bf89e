package repository

import (
	"context"
	"encoding/json"
	"learnhub_backend/internal/kvstore"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"

	"go.uber.org/zap"
)

// ReadDoc decodes the JSON document stored under key. Missing, unreadable
// or corrupt data yields the zero value with ok=false; read faults never
// propagate to callers.
func ReadDoc[T any](ctx context.Context, store kvstore.Store, key string) (T, bool) {
	var out T

	data, ok, err := store.Get(ctx, key)
	if err != nil {
		logger.Log.Warn("document read failed", zap.String("key", key), zap.Error(err))
		return out, false
	}
	if !ok {
		return out, false
	}

	if err := json.Unmarshal(data, &out); err != nil {
		logger.Log.Warn("document corrupt, using default", zap.String("key", key), zap.Error(err))
		var zero T
		return zero, false
	}
	return out, true
}

// WriteDoc serializes v under key. Failures are logged and reported as a
// StorageError; earlier in-memory mutations are not rolled back.
func WriteDoc(ctx context.Context, store kvstore.Store, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("document encode failed", zap.String("key", key), zap.Error(err))
		return &util.StorageError{Op: "encode", Key: key, Err: err}
	}
	if err := store.Set(ctx, key, data); err != nil {
		logger.Log.Error("document write failed", zap.String("key", key), zap.Error(err))
		return &util.StorageError{Op: "write", Key: key, Err: err}
	}
	return nil
}
