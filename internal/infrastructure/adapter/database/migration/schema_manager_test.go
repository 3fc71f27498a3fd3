package migration_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErr "github.com/amirhossein-jamali/dbcoord/internal/domain/error"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/model"
)

func newSchemaManager(t *testing.T) (*migration.SchemaManager, *database.TestDBManager) {
	t.Helper()

	db := database.NewTestDBManager(t, logger.NewNopLogger())
	db.Connect(t)
	return db.Manager.SchemaManager(), db
}

func TestSchemaManager_CreateAll(t *testing.T) {
	ctx := context.Background()
	schema, db := newSchemaManager(t)

	require.NoError(t, schema.CreateAll(ctx))

	migrator := db.Manager.DB().Migrator()
	for _, value := range model.All() {
		assert.True(t, migrator.HasTable(value))
	}

	version, dirty, err := schema.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)
	assert.False(t, dirty)

	t.Run("Upgrade of a stamped schema is a no-op", func(t *testing.T) {
		require.NoError(t, schema.Upgrade(ctx))

		version, _, err := schema.Version(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint(2), version)
	})
}

func TestSchemaManager_UpgradeDowngrade(t *testing.T) {
	ctx := context.Background()
	schema, db := newSchemaManager(t)
	migrator := db.Manager.DB().Migrator()

	version, _, err := schema.Version(ctx)
	require.NoError(t, err)
	assert.Zero(t, version)

	require.NoError(t, schema.Upgrade(ctx))
	version, _, err = schema.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)
	assert.True(t, migrator.HasTable(&model.RecordVersion{}))

	require.NoError(t, schema.Downgrade(ctx, 1))
	version, _, err = schema.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, migrator.HasTable(&model.RecordVersion{}))
	assert.False(t, migrator.HasTable(&model.AuditTransaction{}))
	assert.True(t, migrator.HasTable(&model.Record{}))

	require.NoError(t, schema.Upgrade(ctx))
	assert.True(t, migrator.HasTable(&model.AuditTransaction{}))

	assert.ErrorContains(t, schema.Downgrade(ctx, 0), "downgrade steps must be positive")
}

func TestSchemaManager_DropAll(t *testing.T) {
	ctx := context.Background()
	schema, db := newSchemaManager(t)
	require.NoError(t, schema.CreateAll(ctx))

	require.NoError(t, schema.DropAll(ctx))

	migrator := db.Manager.DB().Migrator()
	for _, value := range model.All() {
		assert.False(t, migrator.HasTable(value))
	}
	assert.False(t, migrator.HasTable(migration.VersionTable))
}

func TestSchemaManager_UnsupportedDialect(t *testing.T) {
	ctx := context.Background()
	db := database.NewTestDBManager(t, logger.NewNopLogger())
	gormDB := db.Connect(t)
	schema := migration.NewSchemaManager(gormDB, migration.DialectMySQL, "", logger.NewNopLogger())

	_, _, err := schema.Version(ctx)
	assert.ErrorIs(t, err, domainErr.ErrUnsupportedDriver)
	assert.ErrorIs(t, schema.Upgrade(ctx), domainErr.ErrUnsupportedDriver)

	// tables are still created, only the version stamp is skipped
	require.NoError(t, schema.CreateAll(ctx))
	assert.True(t, gormDB.Migrator().HasTable(&model.Record{}))
}

func TestSchemaManager_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	schema, _ := newSchemaManager(t)

	assert.ErrorIs(t, schema.Upgrade(ctx), context.Canceled)
}
