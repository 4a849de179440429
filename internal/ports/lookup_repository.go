package ports

import (
	"context"
	"weather-tool-service/internal/domain"
)

// Port: a boundary for persisting get_weather invocations.
type LookupRepository interface {
	// Store a lookup; the repository assigns ID and CreatedAt when empty.
	RecordLookup(ctx context.Context, l *domain.Lookup) error
	// Return the most recent lookups, newest first.
	ListLookups(ctx context.Context, limit int) ([]*domain.Lookup, error)
}
