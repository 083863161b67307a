package web

import (
	"net/http"
	"sort"
	"strings"

	"github.com/jcastell/residencia/internal/domain"
)

// roomGroup is one room's slice of the report, ordered for rendering.
type roomGroup struct {
	Room    string
	Records []*domain.MovementRecord
}

// handleReport renders the room-grouped movement report. Unauthenticated
// callers are sent back to the landing page, not shown an error.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if !s.sessions.Authenticated(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	month := strings.TrimSpace(r.FormValue("month"))

	report, err := s.movements.ReportByRoom(r.Context(), month)
	if err != nil {
		http.Error(w, "failed to build report", http.StatusInternalServerError)
		s.logger.Error("report failed", "month", month, "error", err)
		return
	}

	// Map iteration order is random; sort rooms so the page is stable.
	groups := make([]roomGroup, 0, len(report))
	for room, records := range report {
		groups = append(groups, roomGroup{Room: room, Records: records})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Room < groups[j].Room })

	s.renderPage(w, r, "report.html", map[string]any{
		"Rooms": groups,
		"Month": month,
	})
}
