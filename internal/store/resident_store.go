package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jcastell/residencia/internal/domain"
)

type ResidentStore struct {
	db *sql.DB
}

func NewResidentStore(db *sql.DB) *ResidentStore {
	return &ResidentStore{db: db}
}

func (s *ResidentStore) Create(ctx context.Context, name, room, moveInDate string) (*domain.Resident, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO residents (name, room, move_in_date) VALUES (?, ?, ?)
	`, name, room, moveInDate)
	if err != nil {
		return nil, fmt.Errorf("failed to create resident: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *ResidentStore) GetByID(ctx context.Context, id int64) (*domain.Resident, error) {
	resident := &domain.Resident{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, room, move_in_date, move_out_date FROM residents WHERE id = ?
	`, id).Scan(&resident.ID, &resident.Name, &resident.Room, &resident.MoveInDate, &resident.MoveOutDate)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resident: %w", err)
	}

	return resident, nil
}

func (s *ResidentStore) List(ctx context.Context) ([]*domain.Resident, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, room, move_in_date, move_out_date FROM residents ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list residents: %w", err)
	}
	defer rows.Close()

	var residents []*domain.Resident
	for rows.Next() {
		resident := &domain.Resident{}
		if err := rows.Scan(&resident.ID, &resident.Name, &resident.Room, &resident.MoveInDate, &resident.MoveOutDate); err != nil {
			return nil, fmt.Errorf("failed to scan resident: %w", err)
		}
		residents = append(residents, resident)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating residents: %w", err)
	}

	return residents, nil
}

// UpdateRoom overwrites the resident's room. An unknown id is not an error;
// the UPDATE simply affects zero rows.
func (s *ResidentStore) UpdateRoom(ctx context.Context, id int64, newRoom string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE residents SET room = ? WHERE id = ?
	`, newRoom, id)
	if err != nil {
		return fmt.Errorf("failed to update resident room: %w", err)
	}

	return nil
}
