package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jcastell/residencia/internal/domain"
)

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "login.html", nil)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	err := s.sessions.Login(w, username, password)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		s.logger.Warn("login rejected", "username", username)
		http.Error(w, "invalid credentials", http.StatusForbidden)
		return
	}
	if err != nil {
		http.Error(w, "login failed", http.StatusInternalServerError)
		s.logger.Error("login failed", "error", err)
		return
	}

	s.logger.Info("admin logged in", "username", username)
	http.Redirect(w, r, "/report", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.sessions.Logout(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
