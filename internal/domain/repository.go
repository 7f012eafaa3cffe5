package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching successful lookups.
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// NutritionClient defines the interface for the external nutrition API.
//
// LookupVariant tries exactly one query variant. A (nil, nil) return is a
// definitive miss: the API answered but had no data for this variant. A
// non-nil error is a transport/parse failure for this variant only; the
// caller decides whether to continue with the next one.
type NutritionClient interface {
	Enabled() bool
	LookupVariant(ctx context.Context, variant QueryVariant, requestedWeight float64) (*NutritionInfo, error)
}
