package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"

	"github.com/dmitrijs2005/diagramkeeper/internal/common"
	"github.com/dmitrijs2005/diagramkeeper/internal/logging"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/api/apitest"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/metrics"
)

// startServer serves b over an in-memory listener and returns a client.
func startServer(t *testing.T, b *apitest.Backend) (*Client, *metrics.Metrics) {
	t.Helper()
	m := metrics.NewMetrics()
	srv, err := NewGRPCServer("bufnet", logging.Nop{}, b.Service(), m)
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("server did not stop")
		}
	})
	return NewClient(conn), m
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv, err := NewGRPCServer("127.0.0.1:0", logging.Nop{}, apitest.NewBackend().Service(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv, err := NewGRPCServer("127.0.0.1:99999", logging.Nop{}, apitest.NewBackend().Service(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.Error(t, srv.Run(ctx))
}

func TestServe_PingEchoesRequestID(t *testing.T) {
	c, m := startServer(t, apitest.NewBackend())

	ctx := metadata.AppendToOutgoingContext(context.Background(), common.RequestIDHeaderName, "req-42")
	var header metadata.MD
	resp, err := c.Call(ctx, "Ping", nil, grpc.Header(&header))
	require.NoError(t, err)

	assert.Equal(t, "OK", resp.GetFields()["status"].GetStringValue())
	assert.Equal(t, []string{"req-42"}, header.Get(common.RequestIDHeaderName))
	assert.Equal(t, 1, countSamples(t, m, "diagramkeeper_requests_total"))
}

func TestServe_MintsRequestID(t *testing.T) {
	c, _ := startServer(t, apitest.NewBackend())

	var header metadata.MD
	_, err := c.Call(context.Background(), "Ping", nil, grpc.Header(&header))
	require.NoError(t, err)

	ids := header.Get(common.RequestIDHeaderName)
	require.Len(t, ids, 1)
	assert.Len(t, ids[0], 36)
}

func countSamples(t *testing.T, m *metrics.Metrics, name string) int {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			return len(f.GetMetric())
		}
	}
	return 0
}
