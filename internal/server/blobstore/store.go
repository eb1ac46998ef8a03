// Package blobstore keeps the content of logical files in a versioned object
// store. Every write under a key creates a new immutable version; exactly one
// version per key is the latest.
package blobstore

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/diagramkeeper/internal/common"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/models"
)

// Store is the versioned blob store contract used by the services.
//
// Failures to reach the backend are reported as common.ErrStoreUnavailable.
type Store interface {
	// Put writes body under key as a new latest version and returns its id.
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
	// ListVersions returns one page of versions stored under exactly key,
	// newest first. An empty pageToken starts from the beginning.
	ListVersions(ctx context.Context, key, pageToken string, pageSize int) (*models.VersionPage, error)
	// Restore copies versionID onto key, producing a new latest version.
	// It returns common.ErrNotFound when nothing is stored under key and
	// common.ErrVersionNotFound when the version does not exist.
	Restore(ctx context.Context, key, versionID string) (string, error)
	// Exists reports whether key has a current (non-deleted) version.
	Exists(ctx context.Context, key string) (bool, error)
	// PresignGet returns a time-limited read-only URL for the latest version of key.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// pageToken is the decoded form of the opaque continuation token.
type pageToken struct {
	KeyMarker       string `json:"k"`
	VersionIDMarker string `json:"v"`
}

func encodePageToken(t pageToken) string {
	b, _ := json.Marshal(t)
	return base64.RawURLEncoding.EncodeToString(b)
}

func decodePageToken(s string) (pageToken, error) {
	var t pageToken
	if s == "" {
		return t, nil
	}
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return t, fmt.Errorf("%w: malformed page token", common.ErrValidation)
	}
	if err := json.Unmarshal(b, &t); err != nil || t.KeyMarker == "" {
		return t, fmt.Errorf("%w: malformed page token", common.ErrValidation)
	}
	return t, nil
}
