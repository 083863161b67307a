package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jcastell/residencia/internal/domain"
)

// residentRepository is the subset of store.ResidentStore that
// DirectoryService requires.
type residentRepository interface {
	Create(ctx context.Context, name, room, moveInDate string) (*domain.Resident, error)
	GetByID(ctx context.Context, id int64) (*domain.Resident, error)
	List(ctx context.Context) ([]*domain.Resident, error)
	UpdateRoom(ctx context.Context, id int64, newRoom string) error
}

// DirectoryService manages the resident roster: who lives here and in which
// room. Room reassignment overwrites in place; the movement log, not the
// roster, is where history lives.
type DirectoryService struct {
	residents residentRepository
	now       func() time.Time
	logger    *slog.Logger
}

func NewDirectoryService(residents residentRepository, logger *slog.Logger) *DirectoryService {
	return &DirectoryService{
		residents: residents,
		now:       time.Now,
		logger:    logger,
	}
}

// WithClock overrides the service clock. Tests use it to pin move-in dates.
func (s *DirectoryService) WithClock(now func() time.Time) *DirectoryService {
	s.now = now
	return s
}

// Register creates a resident with today's date as the move-in date.
// Duplicate names and rooms are permitted.
func (s *DirectoryService) Register(ctx context.Context, name, room string) (*domain.Resident, error) {
	moveInDate := s.now().Format("2006-01-02")
	resident, err := s.residents.Create(ctx, name, room, moveInDate)
	if err != nil {
		return nil, err
	}
	s.logger.Info("resident registered", "resident_id", resident.ID, "room", room)
	return resident, nil
}

// ReassignRoom overwrites the resident's current room. A missing resident is
// a silent no-op.
func (s *DirectoryService) ReassignRoom(ctx context.Context, id int64, newRoom string) error {
	if err := s.residents.UpdateRoom(ctx, id, newRoom); err != nil {
		return err
	}
	s.logger.Info("resident reassigned", "resident_id", id, "room", newRoom)
	return nil
}

// Lookup returns the resident for id, or domain.ErrResidentNotFound.
func (s *DirectoryService) Lookup(ctx context.Context, id int64) (*domain.Resident, error) {
	resident, err := s.residents.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up resident: %w", err)
	}
	if resident == nil {
		return nil, domain.ErrResidentNotFound
	}
	return resident, nil
}

func (s *DirectoryService) ListResidents(ctx context.Context) ([]*domain.Resident, error) {
	return s.residents.List(ctx)
}
