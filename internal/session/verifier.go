package session

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier decides whether a username/password pair identifies the
// administrator. An interface so the single-credential check can later be
// swapped for real accounts without touching the gate.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// StaticVerifier checks against one configured credential pair. When a bcrypt
// hash is configured it takes precedence over the plaintext password.
type StaticVerifier struct {
	username     string
	password     string
	passwordHash string
}

func NewStaticVerifier(username, password, passwordHash string) *StaticVerifier {
	return &StaticVerifier{
		username:     username,
		password:     password,
		passwordHash: passwordHash,
	}
}

func (v *StaticVerifier) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1

	if v.passwordHash != "" {
		err := bcrypt.CompareHashAndPassword([]byte(v.passwordHash), []byte(password))
		return userOK && err == nil
	}

	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1
	return userOK && passOK
}
