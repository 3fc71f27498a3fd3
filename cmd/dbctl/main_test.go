package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runDBCtl(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root, c := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	c.teardown()
	return out.String(), err
}

func schemaVersion(t *testing.T) string {
	t.Helper()

	out, err := runDBCtl(t, "version")
	require.NoError(t, err)
	return strings.TrimSpace(out)
}

func TestDBCtl(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dbctl.db")
	t.Setenv("DBC_ENV", "test")
	t.Setenv("DBC_DB_DRIVER", "sqlite")
	t.Setenv("DBC_DB_NAME", path)

	_, err := runDBCtl(t, "create")
	require.NoError(t, err)
	assert.FileExists(t, path)

	_, err = runDBCtl(t, "create")
	assert.Error(t, err, "creating an existing database fails")

	_, err = runDBCtl(t, "init")
	require.NoError(t, err)
	assert.Equal(t, "2", schemaVersion(t))

	_, err = runDBCtl(t, "downgrade", "--steps", "1")
	require.NoError(t, err)
	assert.Equal(t, "1", schemaVersion(t))

	_, err = runDBCtl(t, "downgrade", "--steps", "0")
	assert.ErrorContains(t, err, "--steps must be positive")

	_, err = runDBCtl(t, "upgrade")
	require.NoError(t, err)
	assert.Equal(t, "2", schemaVersion(t))

	_, err = runDBCtl(t, "destroy")
	assert.ErrorIs(t, err, errNotConfirmed)

	_, err = runDBCtl(t, "destroy", "--yes-i-know")
	require.NoError(t, err)

	_, err = runDBCtl(t, "drop")
	assert.ErrorIs(t, err, errNotConfirmed)
	assert.FileExists(t, path)

	_, err = runDBCtl(t, "drop", "--yes-i-know")
	require.NoError(t, err)
	assert.NoFileExists(t, path)
}

func TestDBCtl_UnknownCommand(t *testing.T) {
	_, err := runDBCtl(t, "migrate-everything")

	assert.Error(t, err)
}
