package repository

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"talktrack/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestOpen_File(t *testing.T) {
	dir := t.TempDir()
	repos, err := Open(context.Background(), Options{Driver: DriverFile, DataFile: filepath.Join(dir, "data.json")}, testLogger)
	require.NoError(t, err)
	defer repos.Close()

	ctx := context.Background()
	e := domain.NewEvent("Conf", "2026-05-01", "2026-05-02")
	e.ID = "ev-1"
	require.NoError(t, repos.Events.Create(ctx, e))

	snap, err := repos.Snapshots.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Events, 1)
	assert.Equal(t, "Conf", snap.Events[0].Name)

	settings, err := repos.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Options{Driver: "sqlite"}, testLogger)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite")
}
