package counters

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/diagramkeeper/internal/common"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/models"
)

// Client allocates logical file ids from a Repository.
//
// An allocation is attempted exactly once. If the increment committed but the
// reply was lost, retrying would burn another id, and inventing an id locally
// would break uniqueness across replicas; both are left to the caller.
type Client struct {
	repo    Repository
	timeout time.Duration
}

// NewClient wraps repo; timeout bounds each allocation (0 = caller's context only).
func NewClient(repo Repository, timeout time.Duration) *Client {
	return &Client{repo: repo, timeout: timeout}
}

// Allocate returns a fresh, never before issued file id for tenantID.
func (c *Client) Allocate(ctx context.Context, tenantID string) (string, error) {
	if strings.TrimSpace(tenantID) == "" {
		return "", fmt.Errorf("%w: tenantId is required", common.ErrValidation)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	n, err := c.repo.Next(ctx, tenantID)
	if err != nil {
		if !errors.Is(err, common.ErrStoreUnavailable) {
			err = fmt.Errorf("%w: %w", common.ErrStoreUnavailable, err)
		}
		return "", fmt.Errorf("allocate file id for %s: %w", tenantID, err)
	}
	if n <= 0 {
		return "", fmt.Errorf("allocate file id for %s: %w: non-positive counter %d", tenantID, common.ErrStoreUnavailable, n)
	}

	return models.FormatFileID(n), nil
}
