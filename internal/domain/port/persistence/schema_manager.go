package persistence

import (
	"context"
)

// SchemaManager creates, drops and migrates the database schema
type SchemaManager interface {
	// CreateAll creates every registered table and stamps the latest migration version
	CreateAll(ctx context.Context) error

	// DropAll drops every registered table and the migration bookkeeping
	DropAll(ctx context.Context) error

	// Upgrade applies all pending migrations
	Upgrade(ctx context.Context) error

	// Downgrade reverts the given number of migrations
	Downgrade(ctx context.Context, steps int) error

	// Version reports the current migration version and whether it is dirty
	Version(ctx context.Context) (uint, bool, error)
}
