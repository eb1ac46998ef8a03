// Package counters implements the per-tenant counter store that mints
// logical file ids.
package counters

import "context"

// Repository atomically increments and returns a tenant's counter. A tenant
// without a counter starts from 0, so its first Next returns 1.
type Repository interface {
	Next(ctx context.Context, tenantID string) (int64, error)
}
