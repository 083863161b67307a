package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/jcastell/residencia/internal/service"
	"github.com/jcastell/residencia/internal/session"
)

type Server struct {
	directory *service.DirectoryService
	movements *service.MovementService
	sessions  *session.Manager
	templates embed.FS
	mux       *http.ServeMux
	logger    *slog.Logger
}

func NewServer(
	directory *service.DirectoryService,
	movements *service.MovementService,
	sessions *session.Manager,
	tmpl embed.FS,
	logger *slog.Logger,
) *Server {
	s := &Server{
		directory: directory,
		movements: movements,
		sessions:  sessions,
		templates: tmpl,
		mux:       http.NewServeMux(),
		logger:    logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /movements", s.handleLogMovement)
	s.mux.HandleFunc("GET /residents/new", s.handleRegisterForm)
	s.mux.HandleFunc("POST /residents/new", s.handleRegister)
	s.mux.HandleFunc("GET /residents/reassign", s.handleReassignForm)
	s.mux.HandleFunc("POST /residents/reassign", s.handleReassign)
	s.mux.HandleFunc("GET /report", s.handleReport)
	s.mux.HandleFunc("POST /report", s.handleReport)
	s.mux.HandleFunc("GET /login", s.handleLoginForm)
	s.mux.HandleFunc("POST /login", s.handleLogin)
	s.mux.HandleFunc("GET /logout", s.handleLogout)
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy",
			"default-src 'self'; style-src 'self' 'unsafe-inline'")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(s.mux)).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}

// renderPage parses and executes the base template with one page's content
// block. Every page's data carries the Authenticated flag for the nav.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, page string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	data["Authenticated"] = s.sessions.Authenticated(r)

	tmpl, err := template.New("").ParseFS(s.templates, "base.html", "pages/"+page)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		s.logger.Error("parse template failed", "page", page, "error", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		s.logger.Error("render page failed", "page", page, "error", err)
	}
}
