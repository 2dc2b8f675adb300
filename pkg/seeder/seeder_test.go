package seeder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/integrations/pkg/catalog"
	"github.com/carverauto/integrations/pkg/kv"
	"github.com/carverauto/integrations/pkg/logger"
)

var errPutFailed = errors.New("put failed")

func newTestSeeder(store kv.KVStore) *Seeder {
	s := New(store, logger.NewTestLogger())
	s.now = func() time.Time {
		return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	}

	return s
}

func TestSeedAllWritesEveryRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := kv.NewMockKVStore(ctrl)

	written := make(map[string][]byte)

	mockStore.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string, value []byte) error {
			written[key] = value
			return nil
		}).
		Times(len(catalog.All()))

	s := newTestSeeder(mockStore)

	summary, err := s.SeedAll(context.Background(), false)
	require.NoError(t, err)

	total := len(catalog.All())
	assert.Equal(t, total, summary.Processed)
	assert.Equal(t, total, summary.Written)
	assert.Equal(t, 0, summary.Errors)
	assert.Equal(t, len(catalog.AWSServices), summary.ByProvider["aws"])
	assert.Equal(t, len(catalog.M365Services), summary.ByProvider["m365"])

	// Spot-check one stored payload round-trips to the built record.
	data, ok := written["aws/s3"]
	require.True(t, ok, "aws/s3 written")

	var rec catalog.Record
	require.NoError(t, json.Unmarshal(data, &rec))
	assert.Equal(t, "aws#s3", rec.PK)
	assert.Equal(t, "true", rec.CSPMEnabled)
	assert.Equal(t, "false", rec.AssetsEnabled)
	assert.Equal(t, "true", rec.DataDiscoveryEnabled)
}

func TestSeedAllSimulateIssuesNoWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Put expectations: any storage call fails the test.
	mockStore := kv.NewMockKVStore(ctrl)

	s := newTestSeeder(mockStore)

	summary, err := s.SeedAll(context.Background(), true)
	require.NoError(t, err)

	total := len(catalog.All())
	assert.Equal(t, total, summary.Processed)
	assert.Equal(t, total, summary.Written)
	assert.Equal(t, 0, summary.Errors)
}

func TestSeedAllContinuesAfterWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := kv.NewMockKVStore(ctrl)

	mockStore.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string, _ []byte) error {
			if key == "aws/iam" {
				return errPutFailed
			}
			return nil
		}).
		Times(len(catalog.All()))

	s := newTestSeeder(mockStore)

	summary, err := s.SeedAll(context.Background(), false)
	require.NoError(t, err, "a failed write does not abort the pass")

	total := len(catalog.All())
	assert.Equal(t, total, summary.Processed)
	assert.Equal(t, total-1, summary.Written)
	assert.Equal(t, 1, summary.Errors)
}

func seededBucket(t *testing.T) map[string][]byte {
	t.Helper()

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	bucket := make(map[string][]byte)

	for _, entry := range catalog.All() {
		rec := catalog.BuildRecordAt(entry.Definition, entry.Provider, now)

		data, err := json.Marshal(rec)
		require.NoError(t, err)

		bucket[catalog.KeyPath(entry.Provider, entry.Definition.Service)] = data
	}

	return bucket
}

func TestVerifyRecomputesCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bucket := seededBucket(t)

	keys := make([]string, 0, len(bucket))
	for key := range bucket {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	mockStore := kv.NewMockKVStore(ctrl)
	mockStore.EXPECT().ListKeys(gomock.Any()).Return(keys, nil)
	mockStore.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string) ([]byte, bool, error) {
			value, ok := bucket[key]
			return value, ok, nil
		}).
		Times(len(keys))

	s := newTestSeeder(mockStore)

	report, err := s.Verify(context.Background())
	require.NoError(t, err)

	total := len(catalog.All())
	assert.Equal(t, total, report.Total)
	assert.Equal(t, len(catalog.AWSServices), report.ByProvider["aws"])
	assert.Equal(t, len(catalog.M365Services), report.ByProvider["m365"])
	assert.Equal(t, total, report.CSPMCount)
	assert.Equal(t, len(catalog.AssetsEnabledServices()), report.AssetsCount)
	assert.Equal(t, len(catalog.DataDiscoveryEnabledServices()), report.DataDiscoveryCount)

	assert.Len(t, report.AssetsServices, report.AssetsCount)
	assert.Len(t, report.DataDiscoveryServices, report.DataDiscoveryCount)

	assert.True(t, sort.SliceIsSorted(report.AssetsServices, func(i, j int) bool {
		return report.AssetsServices[i].PK < report.AssetsServices[j].PK
	}), "assets list sorted by pk")
}

func TestVerifyAbortsOnListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	listErr := errors.New("scan failed")

	mockStore := kv.NewMockKVStore(ctrl)
	mockStore.EXPECT().ListKeys(gomock.Any()).Return(nil, listErr)

	s := newTestSeeder(mockStore)

	_, err := s.Verify(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, listErr)
}

func TestVerifyAbortsOnReadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	readErr := errors.New("read failed")

	mockStore := kv.NewMockKVStore(ctrl)
	mockStore.EXPECT().ListKeys(gomock.Any()).Return([]string{"aws/s3", "aws/iam"}, nil)
	mockStore.EXPECT().Get(gomock.Any(), "aws/s3").Return(nil, false, readErr)

	s := newTestSeeder(mockStore)

	_, err := s.Verify(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, readErr)
}

func TestVerifyAbortsOnCorruptRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := kv.NewMockKVStore(ctrl)
	mockStore.EXPECT().ListKeys(gomock.Any()).Return([]string{"aws/s3"}, nil)
	mockStore.EXPECT().Get(gomock.Any(), "aws/s3").Return([]byte("not json"), true, nil)

	s := newTestSeeder(mockStore)

	_, err := s.Verify(context.Background())
	require.Error(t, err)
}

func TestSummaryRender(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := kv.NewMockKVStore(ctrl)

	s := newTestSeeder(mockStore)

	summary, err := s.SeedAll(context.Background(), true)
	require.NoError(t, err)

	var buf bytes.Buffer
	summary.Render(&buf)

	out := buf.String()
	assert.Contains(t, out, "Seeding Summary")
	assert.Contains(t, out, "Total services:")
	assert.Contains(t, out, "By provider:")
	assert.Contains(t, out, "aws:")
	assert.Contains(t, out, "Feature coverage:")
}
