package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastell/residencia/internal/db"
	"github.com/jcastell/residencia/internal/domain"
	"github.com/jcastell/residencia/internal/store"
)

// fixedClock pins service time so dates in assertions are stable.
var fixedClock = func() time.Time {
	return time.Date(2024, time.March, 5, 8, 30, 0, 0, time.UTC)
}

func newTestDirectory(t *testing.T) *DirectoryService {
	t.Helper()
	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	return NewDirectoryService(store.NewResidentStore(d), slog.Default()).WithClock(fixedClock)
}

func TestDirectoryRegister(t *testing.T) {
	svc := newTestDirectory(t)

	resident, err := svc.Register(context.Background(), "Ana", "101")
	require.NoError(t, err)
	assert.NotZero(t, resident.ID)
	assert.Equal(t, "Ana", resident.Name)
	assert.Equal(t, "101", resident.Room)
	assert.Equal(t, "2024-03-05", resident.MoveInDate)
}

func TestDirectoryRegisterThenLookup(t *testing.T) {
	svc := newTestDirectory(t)
	ctx := context.Background()

	created, err := svc.Register(ctx, "Ana", "101")
	require.NoError(t, err)

	found, err := svc.Lookup(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", found.Name)
	assert.Equal(t, "101", found.Room)
}

func TestDirectoryLookupMissing(t *testing.T) {
	svc := newTestDirectory(t)

	_, err := svc.Lookup(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrResidentNotFound)
}

func TestDirectoryReassignRoom(t *testing.T) {
	svc := newTestDirectory(t)
	ctx := context.Background()

	created, err := svc.Register(ctx, "Luis", "204")
	require.NoError(t, err)

	err = svc.ReassignRoom(ctx, created.ID, "305")
	require.NoError(t, err)

	found, err := svc.Lookup(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Luis", found.Name)
	assert.Equal(t, "305", found.Room)
}

func TestDirectoryReassignUnknownIDIsNoOp(t *testing.T) {
	svc := newTestDirectory(t)

	err := svc.ReassignRoom(context.Background(), 42, "305")
	assert.NoError(t, err)
}

func TestDirectoryListResidents(t *testing.T) {
	svc := newTestDirectory(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ana", "101")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "Luis", "204")
	require.NoError(t, err)

	residents, err := svc.ListResidents(ctx)
	require.NoError(t, err)
	assert.Len(t, residents, 2)
}
