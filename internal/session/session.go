// Package session implements the admin session gate: one shared
// administrative identity whose authenticated state travels as a signed
// token in an HttpOnly cookie rather than server-side state.
package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jcastell/residencia/internal/domain"
)

// CookieName is the session cookie carrying the signed admin token.
const CookieName = "residencia_session"

type claims struct {
	jwt.RegisteredClaims
}

// Manager issues and validates admin session tokens and binds them to the
// session cookie.
type Manager struct {
	verifier   CredentialVerifier
	signingKey []byte
	ttl        time.Duration
}

func NewManager(verifier CredentialVerifier, secret string, ttl time.Duration) *Manager {
	return &Manager{
		verifier:   verifier,
		signingKey: []byte(secret),
		ttl:        ttl,
	}
}

// Login checks the credentials and, on success, sets the session cookie on w.
// Bad credentials return domain.ErrInvalidCredentials and leave w untouched.
func (m *Manager) Login(w http.ResponseWriter, username, password string) error {
	if !m.verifier.Verify(username, password) {
		return domain.ErrInvalidCredentials
	}

	token, err := m.issueToken()
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Logout expires the session cookie unconditionally.
func (m *Manager) Logout(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Authenticated reports whether r carries a valid, unexpired session token.
// A missing, malformed, or tampered cookie is simply unauthenticated.
func (m *Manager) Authenticated(r *http.Request) bool {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return false
	}
	return m.validateToken(cookie.Value) == nil
}

func (m *Manager) issueToken() (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			ID:        uuid.NewString(),
		},
	})
	return token.SignedString(m.signingKey)
}

func (m *Manager) validateToken(tokenString string) error {
	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return m.signingKey, nil
	})
	if err != nil {
		return err
	}
	if !parsed.Valid {
		return jwt.ErrTokenUnverifiable
	}
	return nil
}
