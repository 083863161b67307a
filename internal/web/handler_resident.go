package web

import (
	"net/http"
	"strconv"
	"strings"
)

const maxFieldLen = 200

func (s *Server) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "register.html", nil)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.FormValue("name"))
	room := strings.TrimSpace(r.FormValue("room"))
	if name == "" || room == "" {
		http.Error(w, "name and room required", http.StatusBadRequest)
		return
	}
	if len(name) > maxFieldLen || len(room) > maxFieldLen {
		http.Error(w, "name or room too long", http.StatusBadRequest)
		return
	}

	if _, err := s.directory.Register(r.Context(), name, room); err != nil {
		http.Error(w, "failed to register resident", http.StatusInternalServerError)
		s.logger.Error("register resident failed", "error", err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleReassignForm(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "reassign.html", nil)
}

func (s *Server) handleReassign(w http.ResponseWriter, r *http.Request) {
	residentID, err := strconv.ParseInt(strings.TrimSpace(r.FormValue("resident_id")), 10, 64)
	if err != nil {
		http.Error(w, "invalid resident id", http.StatusBadRequest)
		return
	}

	newRoom := strings.TrimSpace(r.FormValue("new_room"))
	if newRoom == "" {
		http.Error(w, "new room required", http.StatusBadRequest)
		return
	}
	if len(newRoom) > maxFieldLen {
		http.Error(w, "new room too long", http.StatusBadRequest)
		return
	}

	if err := s.directory.ReassignRoom(r.Context(), residentID, newRoom); err != nil {
		http.Error(w, "failed to reassign resident", http.StatusInternalServerError)
		s.logger.Error("reassign resident failed", "resident_id", residentID, "error", err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
