package seeder

import (
	"context"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/integrations/pkg/catalog"
	"github.com/carverauto/integrations/pkg/kv"
	"github.com/carverauto/integrations/pkg/logger"
)

func runJetStreamServer(t *testing.T) *server.Server {
	t.Helper()

	opts := &server.Options{
		Host:      "127.0.0.1",
		Port:      -1,
		JetStream: true,
		StoreDir:  t.TempDir(),
	}

	srv, err := server.NewServer(opts)
	require.NoError(t, err)

	go srv.Start()

	if !srv.ReadyForConnections(10 * time.Second) {
		srv.Shutdown()
		t.Fatalf("embedded NATS server not ready for connections")
	}

	require.Eventually(t, func() bool {
		return srv.JetStreamEnabled()
	}, 5*time.Second, 50*time.Millisecond, "embedded NATS server not ready for JetStream")

	return srv
}

func TestSeedAndVerifyAgainstJetStream(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping embedded NATS test in short mode")
	}

	srv := runJetStreamServer(t)
	t.Cleanup(srv.Shutdown)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cfg := &kv.Config{
		NATSURL: srv.ClientURL(),
		Bucket:  "master-integrations-test",
	}
	require.NoError(t, cfg.Validate())

	store, err := kv.NewNatsStore(ctx, cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	s := New(store, logger.NewTestLogger())

	summary, err := s.SeedAll(ctx, false)
	require.NoError(t, err)

	total := len(catalog.All())
	require.Equal(t, total, summary.Written)
	require.Equal(t, 0, summary.Errors)

	report, err := s.Verify(ctx)
	require.NoError(t, err)

	assert.Equal(t, total, report.Total)
	assert.Equal(t, summary.ByProvider, report.ByProvider)
	assert.Equal(t, summary.ByCategory, report.ByCategory)
	assert.Equal(t, total, report.CSPMCount)
	assert.Equal(t, len(catalog.AssetsEnabledServices()), report.AssetsCount)
	assert.Equal(t, len(catalog.DataDiscoveryEnabledServices()), report.DataDiscoveryCount)

	// Re-running overwrites in place: the bucket does not grow.
	again, err := s.SeedAll(ctx, false)
	require.NoError(t, err)
	require.Equal(t, total, again.Written)

	report, err = s.Verify(ctx)
	require.NoError(t, err)
	assert.Equal(t, total, report.Total)
}
