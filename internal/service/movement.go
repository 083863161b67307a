package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jcastell/residencia/internal/domain"
)

// movementRepository is the subset of store.MovementStore that
// MovementService requires.
type movementRepository interface {
	Append(ctx context.Context, r *domain.MovementRecord) (*domain.MovementRecord, error)
	List(ctx context.Context, month string) ([]*domain.MovementRecord, error)
}

// directory is the resident resolution MovementService needs from
// DirectoryService.
type directory interface {
	Lookup(ctx context.Context, id int64) (*domain.Resident, error)
}

// MovementService appends timestamped entry/exit records and produces the
// room-grouped report.
type MovementService struct {
	movements movementRepository
	directory directory
	now       func() time.Time
	logger    *slog.Logger
}

func NewMovementService(movements movementRepository, dir directory, logger *slog.Logger) *MovementService {
	return &MovementService{
		movements: movements,
		directory: dir,
		now:       time.Now,
		logger:    logger,
	}
}

// WithClock overrides the service clock. Tests use it to pin record timestamps.
func (s *MovementService) WithClock(now func() time.Time) *MovementService {
	s.now = now
	return s
}

// Log validates the movement type, resolves the resident, and appends one
// record snapshotting the resident's current name and room. Date and time
// come from the service clock, never from the caller.
func (s *MovementService) Log(ctx context.Context, residentID int64, movementType domain.MovementType) (*domain.MovementRecord, error) {
	if !movementType.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidMovementType, movementType)
	}

	resident, err := s.directory.Lookup(ctx, residentID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rec, err := s.movements.Append(ctx, &domain.MovementRecord{
		ResidentID:   resident.ID,
		Name:         resident.Name,
		Room:         resident.Room,
		Date:         now.Format("2006-01-02"),
		Time:         now.Format("15:04:05"),
		MovementType: movementType,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("movement logged",
		"resident_id", resident.ID,
		"room", resident.Room,
		"type", movementType,
	)
	return rec, nil
}

// ReportByRoom groups movement records by the room stored on each record —
// the room the resident occupied when the movement was logged, not the room
// they occupy now. An empty month means no filter; otherwise only records
// whose date falls in that two-digit calendar month are included, whatever
// the year. Within a room, records keep ascending-id order.
func (s *MovementService) ReportByRoom(ctx context.Context, month string) (map[string][]*domain.MovementRecord, error) {
	records, err := s.movements.List(ctx, month)
	if err != nil {
		return nil, err
	}

	byRoom := make(map[string][]*domain.MovementRecord)
	for _, rec := range records {
		byRoom[rec.Room] = append(byRoom[rec.Room], rec)
	}
	return byRoom, nil
}
