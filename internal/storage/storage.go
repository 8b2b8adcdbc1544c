package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// Storage keys. Every store writes its whole collection under one key.
const (
	CartKey     = "oukrim_meals_cart"
	MealsKey    = "oukrim_meals_data"
	ProductsKey = "oukrim_products_data"
	RatingsKey  = "oukrim_meals_ratings"
	ContactKey  = "oukrim_meals_user_info"
)

// Store is a narrow key-value interface so the backend can be swapped
// (embedded sqlite, postgres, in-memory) without touching callers.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Load reads and decodes the entry under key. An absent entry, a read
// error or a corrupt value all fall back to the supplied default, so
// callers never have to handle a load failure.
func Load[T any](ctx context.Context, s Store, key string, fallback T) T {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return fallback
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback
	}
	return v
}

// Save serializes v and rewrites the whole entry under key. The error
// is returned so callers decide whether to warn or propagate.
func Save[T any](ctx context.Context, s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: marshal %q: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("storage: write %q: %w", key, err)
	}
	return nil
}
