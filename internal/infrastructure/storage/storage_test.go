package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"meraki_estimator/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Memory(t *testing.T) {
	s, err := Open(context.Background(), config.Config{StoreDriver: config.StoreDriverMemory})
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Scope("ana").Set(ctx, "k", "v"))

	_, found, err := s.Scope("bruno").Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	v, found, err := s.KV.Get(ctx, "profile/ana/k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", v)

	// nothing to watch without sqlite
	assert.NoError(t, s.Watch(ctx, time.Millisecond, func() { t.Fatal("unexpected change") }))
}

func TestOpen_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "meraki.db")
	cfg := config.Config{StoreDriver: config.StoreDriverSQLite, SQLitePath: path}

	s, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	require.NoError(t, s.Scope("default").Set(context.Background(), "k", "v"))
	require.NoError(t, s.Close())

	reopened, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer reopened.Close()
	v, found, err := reopened.Scope("default").Get(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", v)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.Config{StoreDriver: "redis"})
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
