package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/diagramkeeper/internal/common"
	"github.com/dmitrijs2005/diagramkeeper/internal/logging"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/api"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/api/apitest"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/blobstore"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/metrics"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/models"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/services"
)


func newTestServer(b *apitest.Backend, blobs BlobSource) *Server {
	return NewServer("127.0.0.1:0", logging.Nop{}, b.Service(), metrics.NewMetrics(), blobs)
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	s := newTestServer(apitest.NewBackend(), nil)

	w := do(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"OK"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(common.RequestIDHeaderName))
}

func TestRequestIDEchoed(t *testing.T) {
	s := newTestServer(apitest.NewBackend(), nil)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(common.RequestIDHeaderName, "req-7")
	w := httptest.NewRecorder()

	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, "req-7", w.Header().Get(common.RequestIDHeaderName))
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(apitest.NewBackend(), nil)
	do(t, s, http.MethodGet, "/health", nil)

	w := do(t, s, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "diagramkeeper_requests_total")
}

func TestGenerate_KindFromPath(t *testing.T) {
	b := apitest.NewBackend()
	var got services.GenerateRequest
	b.Generator.GenerateFn = func(_ context.Context, req services.GenerateRequest) (*services.GenerateResult, error) {
		got = req
		return &services.GenerateResult{
			UploadResult: &services.UploadResult{FileID: "file_001", StorageKey: "acme/file_001", VersionID: "v1"},
			ImageURL:     "http://blobs/acme/file_001",
		}, nil
	}
	s := newTestServer(b, nil)

	w := do(t, s, http.MethodPost, "/diagrams/er", map[string]any{
		"tenantId": "acme", "inputFormat": "markup", "outputFormat": "png", "inputText": "[users]\n*id",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, models.KindER, got.Kind)
	assert.Equal(t, "[users]\n*id", got.Input)
	resp := decode[api.FileResponse](t, w)
	assert.Equal(t, "file_001", resp.FileID)
	assert.Equal(t, "http://blobs/acme/file_001", resp.ImageURL)
}

func TestGenerate_UnknownKind(t *testing.T) {
	s := newTestServer(apitest.NewBackend(), nil)

	w := do(t, s, http.MethodPost, "/diagrams/uml", map[string]any{"tenantId": "acme"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMalformedBody(t *testing.T) {
	s := newTestServer(apitest.NewBackend(), nil)
	req := httptest.NewRequest(http.MethodPost, "/files", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[api.ErrorResponse](t, w).Error, "malformed request")
}

func TestErrorStatuses(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", fmt.Errorf("%w: Missing tenantId", common.ErrValidation), http.StatusBadRequest},
		{"unsupported", common.ErrUnsupportedFormat, http.StatusBadRequest},
		{"render", common.ErrRender, http.StatusUnprocessableEntity},
		{"store", common.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{"not found", common.ErrNotFound, http.StatusNotFound},
		{"other", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := apitest.NewBackend()
			b.Files.UploadFn = func(context.Context, services.UploadRequest) (*services.UploadResult, error) {
				return nil, tt.err
			}
			s := newTestServer(b, nil)

			w := do(t, s, http.MethodPost, "/files", map[string]any{"tenantId": "acme"})
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestInternalErrorHidesMessage(t *testing.T) {
	b := apitest.NewBackend()
	b.Files.UploadFn = func(context.Context, services.UploadRequest) (*services.UploadResult, error) {
		return nil, fmt.Errorf("dial postgres://user:pw@db")
	}
	s := newTestServer(b, nil)

	w := do(t, s, http.MethodPost, "/files", map[string]any{"tenantId": "acme"})
	assert.Equal(t, "internal error", decode[api.ErrorResponse](t, w).Error)
}

func TestPartialWriteBody(t *testing.T) {
	b := apitest.NewBackend()
	b.Files.UploadFn = func(context.Context, services.UploadRequest) (*services.UploadResult, error) {
		return nil, &services.PartialWriteError{
			FileID: "file_005", StorageKey: "acme/file_005", VersionID: "v1",
			Err: fmt.Errorf("%w: timeout", common.ErrStoreUnavailable),
		}
	}
	s := newTestServer(b, nil)

	w := do(t, s, http.MethodPost, "/files", map[string]any{"tenantId": "acme", "content": "aGk="})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	body := decode[api.ErrorResponse](t, w)
	assert.Equal(t, "file_005", body.FileID)
	assert.Equal(t, "acme/file_005", body.StorageKey)
	assert.Equal(t, "v1", body.VersionID)
}

func TestFileRoutesTakeIDFromPath(t *testing.T) {
	b := apitest.NewBackend()
	var seen []string
	b.Versions.ListVersionsFn = func(_ context.Context, tenantID, fileID, token string) (*models.VersionPage, error) {
		seen = append(seen, "versions:"+tenantID+"/"+fileID+":"+token)
		return &models.VersionPage{}, nil
	}
	b.Versions.RestoreFn = func(_ context.Context, tenantID, fileID, versionID string) (string, error) {
		seen = append(seen, "restore:"+tenantID+"/"+fileID+"@"+versionID)
		return "v9", nil
	}
	b.Files.GetImageURLFn = func(_ context.Context, tenantID, fileID string) (string, error) {
		seen = append(seen, "url:"+tenantID+"/"+fileID)
		return "http://signed", nil
	}
	b.Files.RetryMetadataFn = func(_ context.Context, req services.RetryMetadataRequest) (*models.File, error) {
		seen = append(seen, "metadata:"+req.TenantID+"/"+req.FileID)
		return &models.File{TenantID: req.TenantID, FileID: req.FileID, StorageKey: req.TenantID + "/" + req.FileID}, nil
	}
	s := newTestServer(b, nil)

	w := do(t, s, http.MethodPost, "/files/file_001/versions", map[string]any{"tenantId": "acme", "pageToken": "t"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{}, decode[map[string]any](t, w)["versions"])

	w = do(t, s, http.MethodPost, "/files/file_001/restore", map[string]any{"tenantId": "acme", "versionId": "v1"})
	require.Equal(t, http.StatusOK, w.Code)
	restored := decode[api.RestoreResponse](t, w)
	assert.Equal(t, "restored", restored.Status)
	assert.Equal(t, "v9", restored.VersionID)
	assert.Equal(t, "v1", restored.RestoredFrom)

	w = do(t, s, http.MethodPost, "/files/file_001/url", map[string]any{"tenantId": "acme"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, api.ImageURLResponse{URL: "http://signed", ExpiresIn: 3600}, decode[api.ImageURLResponse](t, w))

	w = do(t, s, http.MethodPost, "/files/file_001/metadata", map[string]any{"tenantId": "acme"})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, []string{
		"versions:acme/file_001:t",
		"restore:acme/file_001@v1",
		"url:acme/file_001",
		"metadata:acme/file_001",
	}, seen)
}

func TestListFiles(t *testing.T) {
	b := apitest.NewBackend()
	b.Files.ListFilesFn = func(_ context.Context, tenantID string, limit, offset int) ([]*models.File, error) {
		assert.Equal(t, "acme", tenantID)
		assert.Equal(t, 5, limit)
		assert.Equal(t, 10, offset)
		return []*models.File{{TenantID: "acme", FileID: "file_001", UpdatedAt: time.Now()}}, nil
	}
	s := newTestServer(b, nil)

	w := do(t, s, http.MethodGet, "/tenants/acme/files?limit=5&offset=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[api.ListFilesResponse](t, w).Files, 1)

	w = do(t, s, http.MethodGet, "/tenants/acme/files?limit=many", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBlobs(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore("http://example.test/blobs")
	_, err := store.Put(ctx, "acme/file_001", []byte("<svg></svg>"), "image/svg+xml")
	require.NoError(t, err)
	s := newTestServer(apitest.NewBackend(), store)

	signed, err := store.PresignGet(ctx, "acme/file_001", time.Hour)
	require.NoError(t, err)
	path := strings.TrimPrefix(signed, "http://example.test")

	w := do(t, s, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<svg></svg>", w.Body.String())

	w = do(t, s, http.MethodGet, "/blobs/acme/file_001?expires=3600", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	missing, err := store.PresignGet(ctx, "acme/file_404", time.Hour)
	require.NoError(t, err)
	w = do(t, s, http.MethodGet, strings.TrimPrefix(missing, "http://example.test"), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	without := newTestServer(apitest.NewBackend(), nil)
	w = do(t, without, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBlobs_ExpiredURL(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore("http://example.test/blobs")
	_, err := store.Put(ctx, "acme/file_001", []byte("x"), "")
	require.NoError(t, err)
	s := newTestServer(apitest.NewBackend(), store)

	signed, err := store.PresignGet(ctx, "acme/file_001", 0)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	w := do(t, s, http.MethodGet, strings.TrimPrefix(signed, "http://example.test"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestServe_StopsOnContextCancel(t *testing.T) {
	s := newTestServer(apitest.NewBackend(), nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
