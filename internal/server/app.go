// Package server initializes and runs the diagramkeeper server. It connects
// the stores, builds the services and runs the gRPC and HTTP endpoints until
// the process is signalled.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrijs2005/diagramkeeper/internal/logging"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/api"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/blobstore"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/config"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/metrics"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/render"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/repositories/counters"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/services"

	gs "github.com/dmitrijs2005/diagramkeeper/internal/server/grpc"
)

// seams for tests
var (
	openPostgres   = repomanager.OpenPostgres
	newRepoManager = repomanager.NewPostgresRepositoryManager
	newS3Store     = func(ctx context.Context, opts blobstore.S3Options) (s3Bucket, error) {
		return blobstore.NewS3Store(ctx, opts)
	}
)

type s3Bucket interface {
	blobstore.Store
	EnsureBucket(ctx context.Context, region string) error
}

type App struct {
	config  *config.Config
	logger  logging.Logger
	metrics *metrics.Metrics
	api     *api.Service
	// blobs is set for the memory backend only, to serve its URLs.
	blobs httpapi.BlobSource

	closers []func() error
}

func NewApp(c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger := logging.New(c.LogFormat, c.LogLevel, os.Stdout)
	app := &App{config: c, logger: logger, metrics: metrics.NewMetrics()}

	ctx := context.Background()

	db, err := openPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	app.closers = append(app.closers, db.Close)

	rm := newRepoManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		app.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	counterRepo, err := app.counterRepository(rm, db)
	if err != nil {
		app.Close()
		return nil, err
	}

	blobs, err := app.blobStore(ctx)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("blob store init error: %w", err)
	}

	catalog := services.NewPostgresCatalog(db, rm)
	allocator := counters.NewClient(counterRepo, c.StoreTimeout)

	files := services.NewFileService(allocator, blobs, catalog, app.metrics, logger, services.FileServiceOptions{
		StoreTimeout:    c.StoreTimeout,
		RetryMaxElapsed: c.StoreRetryMaxElapsed,
		PresignExpiry:   c.PresignExpiry,
	})
	versions := services.NewVersionService(blobs, catalog, app.metrics, logger, c.VersionPageSize, c.StoreTimeout)

	dispatcher := render.NewDefaultDispatcher(
		render.NewGraphvizRunner(c.GraphvizPath),
		&render.PgxIntrospector{Timeout: c.StoreTimeout},
		app.metrics,
	)
	generator := services.NewGenerateService(dispatcher, files, logger)

	app.api = api.NewService(files, versions, generator, c.PresignExpiry)
	return app, nil
}

func (app *App) counterRepository(rm repomanager.RepositoryManager, db *sql.DB) (counters.Repository, error) {
	if app.config.CounterBackend != config.CounterBackendRedis {
		return rm.Counters(db), nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: app.config.RedisAddr})
	app.closers = append(app.closers, rdb.Close)
	return counters.NewRedisRepository(rdb), nil
}

func (app *App) blobStore(ctx context.Context) (blobstore.Store, error) {
	c := app.config
	if c.BlobBackend == config.BlobBackendMemory {
		m := blobstore.NewMemoryStore(c.MemoryBaseURL)
		app.blobs = m
		app.logger.Warn(ctx, "using in-memory blob store, content is lost on restart")
		return m, nil
	}

	s, err := newS3Store(ctx, blobstore.S3Options{
		Region:       c.S3Region,
		AccessKey:    c.S3RootUser,
		SecretKey:    c.S3RootPassword,
		Bucket:       c.S3Bucket,
		BaseEndpoint: c.S3BaseEndpoint,
	})
	if err != nil {
		return nil, err
	}
	if err := s.EnsureBucket(ctx, c.S3Region); err != nil {
		return nil, err
	}
	return s, nil
}

// Close releases the database and Redis connections.
func (app *App) Close() {
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i](); err != nil {
			app.logger.Warn(context.Background(), "close failed", "error", err)
		}
	}
	app.closers = nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.api, app.metrics)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger, app.api, app.metrics, app.blobs)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves both endpoints until ctx is done, a signal arrives or one of
// the servers fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
	app.Close()
	app.logger.Info(context.Background(), "App stopped")
}
