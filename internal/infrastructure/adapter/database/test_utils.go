package database

import (
	"context"
	"testing"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/dbcoord/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/time"
)

// TestDBManager provides utilities for testing with a database
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates a test manager over a private in-memory sqlite database
func NewTestDBManager(t *testing.T, logger coreport.Logger, opts ...ManagerOption) *TestDBManager {
	t.Helper()

	return NewTestDBManagerWithConfig(t, SQLiteConfig(MemoryDatabase), logger, opts...)
}

// NewTestDBManagerWithConfig creates a test manager for an explicit configuration
func NewTestDBManagerWithConfig(t *testing.T, config *Config, logger coreport.Logger, opts ...ManagerOption) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()

	return &TestDBManager{
		Manager:      NewManager(config, logger, timeProvider, opts...),
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// Connect connects to the test database and closes it when the test ends
func (m *TestDBManager) Connect(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := m.Manager.Connect(context.Background())
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	t.Cleanup(func() {
		if err := m.Manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	return db
}

// SetupTestDB creates every registered table
func (m *TestDBManager) SetupTestDB(t *testing.T) {
	t.Helper()

	if err := m.Manager.DB().AutoMigrate(model.All()...); err != nil {
		t.Fatalf("Failed to create tables: %v", err)
	}
}

// TruncateAllTables deletes every row of every registered table
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	db := m.Manager.DB().Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, value := range model.All() {
		if err := db.Delete(value).Error; err != nil {
			t.Fatalf("Failed to truncate tables: %v", err)
		}
	}
}

// Count returns the number of rows of the model's table
func (m *TestDBManager) Count(t *testing.T, value any) int64 {
	t.Helper()

	var n int64
	if err := m.Manager.DB().Model(value).Count(&n).Error; err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}
