package server

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// authorize checks the request's bearer token against the configured bcrypt
// hash. An empty hash leaves the API open.
func (s *Server) authorize(r *http.Request) bool {
	if s.cfg.APITokenHash == "" {
		return true
	}

	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(s.cfg.APITokenHash), []byte(token)) == nil
}

// HashToken produces a bcrypt hash suitable for COLORFY_API_TOKEN_HASH.
func HashToken(token string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
