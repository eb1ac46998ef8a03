// Package httpapi serves the diagramkeeper API as JSON over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/diagramkeeper/internal/logging"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/api"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/metrics"
)

// BlobSource serves content behind URLs issued by the store itself;
// MemoryStore implements it.
type BlobSource interface {
	Download(key string, query url.Values) ([]byte, error)
}

type Server struct {
	address string
	api     *api.Service
	blobs   BlobSource
	metrics *metrics.Metrics
	logger  logging.Logger
	router  *gin.Engine
}

// NewServer builds the router. blobs may be nil; then /blobs is not served.
func NewServer(a string, l logging.Logger, svc *api.Service, m *metrics.Metrics, blobs BlobSource) *Server {
	s := &Server{
		address: a,
		api:     svc,
		blobs:   blobs,
		metrics: m,
		logger:  l.With("module", "http_server"),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestID(), s.observe())

	r.GET("/health", s.health)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	r.POST("/diagrams/:kind", s.generate)
	r.POST("/files", s.upload)

	files := r.Group("/files/:fileId")
	{
		files.POST("/versions", s.listVersions)
		files.POST("/restore", s.restore)
		files.POST("/url", s.imageURL)
		files.POST("/metadata", s.retryMetadata)
	}

	r.GET("/tenants/:tenantId/files", s.listFiles)

	if s.blobs != nil {
		r.GET("/blobs/*key", s.blob)
	}
	return r
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, lis)
}

// Serve handles requests on lis until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{Handler: s.router, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
