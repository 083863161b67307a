package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastell/residencia/internal/domain"
)

func appendRecord(t *testing.T, s *MovementStore, residentID int64, name, room, date, tm string, mt domain.MovementType) *domain.MovementRecord {
	t.Helper()
	rec, err := s.Append(context.Background(), &domain.MovementRecord{
		ResidentID:   residentID,
		Name:         name,
		Room:         room,
		Date:         date,
		Time:         tm,
		MovementType: mt,
	})
	require.NoError(t, err)
	return rec
}

func TestMovementStoreAppend(t *testing.T) {
	d := openTestDB(t)
	t.Cleanup(func() { _ = d.Close() })

	store := NewMovementStore(d)

	rec := appendRecord(t, store, 1, "Ana", "101", "2024-03-05", "08:30:00", domain.MovementEntry)
	assert.NotZero(t, rec.ID)
	assert.Equal(t, int64(1), rec.ResidentID)
	assert.Equal(t, "Ana", rec.Name)
	assert.Equal(t, "101", rec.Room)
	assert.Equal(t, "2024-03-05", rec.Date)
	assert.Equal(t, "08:30:00", rec.Time)
	assert.Equal(t, domain.MovementEntry, rec.MovementType)
}

func TestMovementStoreListAll(t *testing.T) {
	d := openTestDB(t)
	t.Cleanup(func() { _ = d.Close() })

	store := NewMovementStore(d)

	first := appendRecord(t, store, 1, "Ana", "101", "2024-03-05", "08:30:00", domain.MovementEntry)
	second := appendRecord(t, store, 1, "Ana", "101", "2024-03-05", "19:05:00", domain.MovementExit)

	records, err := store.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, first.ID, records[0].ID)
	assert.Equal(t, second.ID, records[1].ID)
}

func TestMovementStoreListMonthFilter(t *testing.T) {
	d := openTestDB(t)
	t.Cleanup(func() { _ = d.Close() })

	store := NewMovementStore(d)

	appendRecord(t, store, 1, "Ana", "101", "2024-03-05", "08:30:00", domain.MovementEntry)
	appendRecord(t, store, 2, "Luis", "204", "2024-04-01", "09:00:00", domain.MovementEntry)
	// Same month, different year: the filter ignores the year component.
	appendRecord(t, store, 1, "Ana", "101", "2023-03-20", "12:00:00", domain.MovementExit)

	records, err := store.List(context.Background(), "03")
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, rec := range records {
		assert.Equal(t, "03", rec.Date[5:7])
	}
}

func TestMovementStoreListMonthNoMatches(t *testing.T) {
	d := openTestDB(t)
	t.Cleanup(func() { _ = d.Close() })

	store := NewMovementStore(d)

	appendRecord(t, store, 1, "Ana", "101", "2024-03-05", "08:30:00", domain.MovementEntry)

	records, err := store.List(context.Background(), "12")
	require.NoError(t, err)
	assert.Empty(t, records)
}
