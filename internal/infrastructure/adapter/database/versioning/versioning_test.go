package versioning_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/dbcoord/internal/domain/entity"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/database/versioning"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/time"
)

func newVersionedDB(t *testing.T) *database.TestDBManager {
	t.Helper()

	clock := timeprovider.NewFixedTimeProvider(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	db := database.NewTestDBManager(t, logger.NewNopLogger(),
		database.WithVersioning(versioning.NewManager(clock, logger.NewNopLogger())))
	db.Connect(t)
	db.SetupTestDB(t)
	return db
}

func record(title string) *model.Record {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &model.Record{ID: "r1", Title: title, Revision: 1, CreatedAt: now, UpdatedAt: now}
}

func TestVersioning_Lifecycle(t *testing.T) {
	ctx := versioning.ContextWithRemoteAddr(context.Background(), "10.0.0.7")
	db := newVersionedDB(t)
	s := db.Manager.NewSession()

	require.NoError(t, s.BeginNested(ctx))
	s.Add(record("first"))
	require.NoError(t, s.Commit(ctx))

	require.NoError(t, s.BeginNested(ctx))
	updated := record("second")
	updated.Revision = 2
	s.Add(updated)
	require.NoError(t, s.Commit(ctx))

	require.NoError(t, s.BeginNested(ctx))
	s.Delete(updated)
	require.NoError(t, s.Commit(ctx))

	entries, err := versioning.Versions(ctx, db.Manager.DB(), "records", "r1")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	ops := make([]string, 0, len(entries))
	for i, e := range entries {
		assert.Equal(t, i+1, e.Version)
		assert.Equal(t, "10.0.0.7", e.RemoteAddr)
		require.NotNil(t, e.TransactionID)
		require.NotNil(t, e.IssuedAt)
		ops = append(ops, e.Operation)
	}
	assert.Equal(t, []string{
		string(entity.VersionInsert),
		string(entity.VersionUpdate),
		string(entity.VersionDelete),
	}, ops)
	assert.NotEqual(t, *entries[0].TransactionID, *entries[1].TransactionID)
	assert.Equal(t, int64(3), db.Count(t, &model.AuditTransaction{}))

	t.Run("Restore decodes a snapshot", func(t *testing.T) {
		var restored model.Record
		require.NoError(t, versioning.Restore(entries[0].RecordVersion, &restored))

		assert.Equal(t, "r1", restored.ID)
		assert.Equal(t, "first", restored.Title)
		assert.Equal(t, 1, restored.Revision)
	})
}

func TestVersioning_RolledBackWritesLeaveNoTrail(t *testing.T) {
	ctx := context.Background()
	db := newVersionedDB(t)
	s := db.Manager.NewSession()

	require.NoError(t, s.BeginNested(ctx))
	s.Add(record("discarded"))
	require.NoError(t, s.Flush(ctx))
	require.NoError(t, s.Rollback(ctx))

	assert.Zero(t, db.Count(t, &model.RecordVersion{}))
	assert.Zero(t, db.Count(t, &model.AuditTransaction{}))
}

func TestVersioning_UnversionedModelsAreIgnored(t *testing.T) {
	ctx := context.Background()
	db := newVersionedDB(t)

	marker := &model.CleanupMarker{ID: "m1", RecordID: "r1", Reason: "boom", CreatedAt: time.Now().UTC()}
	require.NoError(t, db.Manager.DB().WithContext(ctx).Create(marker).Error)

	assert.Zero(t, db.Count(t, &model.RecordVersion{}))
}

func TestVersioning_WritesOutsideSessions(t *testing.T) {
	ctx := context.Background()
	db := newVersionedDB(t)

	require.NoError(t, db.Manager.DB().WithContext(ctx).Create(record("direct")).Error)

	entries, err := versioning.Versions(ctx, db.Manager.DB(), "records", "r1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].TransactionID)
	assert.Nil(t, entries[0].IssuedAt)
	assert.Empty(t, entries[0].RemoteAddr)
}

func TestRestore_CorruptSnapshot(t *testing.T) {
	var dest model.Record
	err := versioning.Restore(model.RecordVersion{RecordTable: "records", RecordKey: "r1", Version: 4, Snapshot: "{"}, &dest)

	assert.ErrorContains(t, err, "restore version 4 of records/r1")
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, versioning.RemoteAddrFromContext(ctx))
	assert.Nil(t, versioning.TransactionIDFromContext(ctx))
	assert.Equal(t, "1.2.3.4", versioning.RemoteAddrFromContext(versioning.ContextWithRemoteAddr(ctx, "1.2.3.4")))
}
