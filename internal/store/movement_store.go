package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jcastell/residencia/internal/domain"
)

type MovementStore struct {
	db *sql.DB
}

func NewMovementStore(db *sql.DB) *MovementStore {
	return &MovementStore{db: db}
}

// Append writes one movement record. Records are immutable once written;
// there is no update or delete.
func (s *MovementStore) Append(ctx context.Context, r *domain.MovementRecord) (*domain.MovementRecord, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO movement_records (resident_id, name, room, date, time, movement_type)
		VALUES (?, ?, ?, ?, ?, ?)
	`, r.ResidentID, r.Name, r.Room, r.Date, r.Time, r.MovementType)
	if err != nil {
		return nil, fmt.Errorf("failed to append movement record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *MovementStore) GetByID(ctx context.Context, id int64) (*domain.MovementRecord, error) {
	rec := &domain.MovementRecord{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, resident_id, name, room, date, time, movement_type
		FROM movement_records WHERE id = ?
	`, id).Scan(&rec.ID, &rec.ResidentID, &rec.Name, &rec.Room, &rec.Date, &rec.Time, &rec.MovementType)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get movement record: %w", err)
	}

	return rec, nil
}

// List returns movement records in insertion order. When month is non-empty
// it must be a two-digit month ("01".."12"); only records whose date falls in
// that calendar month are returned, irrespective of year.
func (s *MovementStore) List(ctx context.Context, month string) ([]*domain.MovementRecord, error) {
	query := `
		SELECT id, resident_id, name, room, date, time, movement_type
		FROM movement_records
	`
	var args []any
	if month != "" {
		query += ` WHERE strftime('%m', date) = ?`
		args = append(args, month)
	}
	query += ` ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list movement records: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var records []*domain.MovementRecord
	for rows.Next() {
		rec := &domain.MovementRecord{}
		if err := rows.Scan(&rec.ID, &rec.ResidentID, &rec.Name, &rec.Room, &rec.Date, &rec.Time, &rec.MovementType); err != nil {
			return nil, fmt.Errorf("failed to scan movement record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movement records: %w", err)
	}

	return records, nil
}
