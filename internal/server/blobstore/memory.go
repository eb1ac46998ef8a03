package blobstore

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/diagramkeeper/internal/common"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/models"
)

type memVersion struct {
	id           string
	body         []byte
	contentType  string
	lastModified time.Time
}

// ErrInvalidURL is returned by Download for a URL that was not issued by the
// store or has expired.
var ErrInvalidURL = errors.New("blob url invalid or expired")

// MemoryStore is an in-process Store. Versions are kept oldest first.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string][]memVersion
	baseURL string
	secret  []byte
	now     func() time.Time
}

// NewMemoryStore returns an empty store; presigned URLs are built on baseURL
// and signed with a key that lives as long as the store.
func NewMemoryStore(baseURL string) *MemoryStore {
	secret := make([]byte, 32)
	_, _ = rand.Read(secret)
	return &MemoryStore{
		objects: make(map[string][]memVersion),
		baseURL: baseURL,
		secret:  secret,
		now:     time.Now,
	}
}

func (m *MemoryStore) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrStoreUnavailable, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.appendLocked(key, append([]byte(nil), body...), contentType), nil
}

func (m *MemoryStore) appendLocked(key string, body []byte, contentType string) string {
	id := uuid.NewString()
	m.objects[key] = append(m.objects[key], memVersion{
		id:           id,
		body:         body,
		contentType:  contentType,
		lastModified: m.now().UTC(),
	})
	return id
}

func (m *MemoryStore) ListVersions(ctx context.Context, key, token string, pageSize int) (*models.VersionPage, error) {
	marker, err := decodePageToken(token)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStoreUnavailable, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	versions := m.objects[key]
	start := len(versions) - 1
	if marker.KeyMarker != "" {
		if marker.KeyMarker != key {
			return &models.VersionPage{Versions: []models.BlobVersion{}}, nil
		}
		start = -1
		for i := len(versions) - 1; i >= 0; i-- {
			if versions[i].id == marker.VersionIDMarker {
				start = i - 1
				break
			}
		}
	}

	page := &models.VersionPage{Versions: []models.BlobVersion{}}
	for i := start; i >= 0; i-- {
		if pageSize > 0 && len(page.Versions) == pageSize {
			page.NextPageToken = encodePageToken(pageToken{
				KeyMarker:       key,
				VersionIDMarker: versions[i+1].id,
			})
			break
		}
		v := versions[i]
		page.Versions = append(page.Versions, models.BlobVersion{
			VersionID:    v.id,
			LastModified: v.lastModified,
			IsLatest:     i == len(versions)-1,
			Size:         int64(len(v.body)),
		})
	}
	return page, nil
}

func (m *MemoryStore) Restore(ctx context.Context, key, versionID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrStoreUnavailable, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	versions, ok := m.objects[key]
	if !ok || len(versions) == 0 {
		return "", fmt.Errorf("%w: %s", common.ErrNotFound, key)
	}
	for _, v := range versions {
		if v.id == versionID {
			return m.appendLocked(key, v.body, v.contentType), nil
		}
	}
	return "", fmt.Errorf("%w: %s@%s", common.ErrVersionNotFound, key, versionID)
}

func (m *MemoryStore) Exists(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%w: %w", common.ErrStoreUnavailable, err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects[key]) > 0, nil
}

// PresignGet returns a URL under baseURL carrying the issue time, the
// lifetime in seconds and an HMAC over both and the key. Download checks it.
func (m *MemoryStore) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrStoreUnavailable, err)
	}
	issued := strconv.FormatInt(m.now().Unix(), 10)
	expires := strconv.FormatInt(int64(expiry/time.Second), 10)

	q := url.Values{}
	q.Set("issued", issued)
	q.Set("expires", expires)
	q.Set("signature", m.sign(key, issued, expires))
	return m.baseURL + "/" + key + "?" + q.Encode(), nil
}

// Download returns the latest content of key for a query produced by
// PresignGet while it is still valid.
func (m *MemoryStore) Download(key string, query url.Values) ([]byte, error) {
	issued, expires := query.Get("issued"), query.Get("expires")
	sig, err := hex.DecodeString(query.Get("signature"))
	if err != nil {
		return nil, ErrInvalidURL
	}
	want, _ := hex.DecodeString(m.sign(key, issued, expires))
	if !hmac.Equal(sig, want) {
		return nil, ErrInvalidURL
	}

	from, err1 := strconv.ParseInt(issued, 10, 64)
	ttl, err2 := strconv.ParseInt(expires, 10, 64)
	if err1 != nil || err2 != nil {
		return nil, ErrInvalidURL
	}
	if m.now().After(time.Unix(from+ttl, 0)) {
		return nil, ErrInvalidURL
	}

	body, ok := m.Content(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", common.ErrNotFound, key)
	}
	return body, nil
}

func (m *MemoryStore) sign(key, issued, expires string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(key + "\n" + issued + "\n" + expires))
	return hex.EncodeToString(mac.Sum(nil))
}

// Content returns the bytes of the latest version of key.
func (m *MemoryStore) Content(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	versions := m.objects[key]
	if len(versions) == 0 {
		return nil, false
	}
	return append([]byte(nil), versions[len(versions)-1].body...), true
}
