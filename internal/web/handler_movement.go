package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/jcastell/residencia/internal/domain"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "index.html", nil)
}

func (s *Server) handleLogMovement(w http.ResponseWriter, r *http.Request) {
	residentID, err := strconv.ParseInt(strings.TrimSpace(r.FormValue("resident_id")), 10, 64)
	if err != nil {
		http.Error(w, "invalid resident id", http.StatusBadRequest)
		return
	}

	movementType := domain.MovementType(strings.TrimSpace(r.FormValue("movement_type")))

	_, err = s.movements.Log(r.Context(), residentID, movementType)
	switch {
	case errors.Is(err, domain.ErrInvalidMovementType):
		http.Error(w, "invalid movement type", http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrResidentNotFound):
		http.Error(w, "resident not found", http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, "failed to log movement", http.StatusInternalServerError)
		s.logger.Error("log movement failed", "resident_id", residentID, "error", err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
