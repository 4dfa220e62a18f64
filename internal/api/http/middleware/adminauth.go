package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/json"
	"net/http"

	"github.com/specflow/quote-server/internal/logger"
)

// AdminHeader carries the shared admin secret on protected requests. The
// secret is never accepted from the query string.
const AdminHeader = "X-Admin-Secret"

// AdminAuth guards admin routes with a shared-secret header.
type AdminAuth struct {
	secret string
	logger *logger.Logger
}

// NewAdminAuth creates an AdminAuth middleware. An empty secret disables
// admin access entirely rather than leaving it open.
func NewAdminAuth(secret string, logger *logger.Logger) *AdminAuth {
	return &AdminAuth{secret: secret, logger: logger}
}

// Handle rejects requests whose header does not match the configured secret.
// The comparison runs over fixed-length digests so its timing does not depend
// on how much of the secret matched, and the 401 body is identical for every
// failure mode.
func (a *AdminAuth) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.secret == "" || !a.authorized(r.Header.Get(AdminHeader)) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *AdminAuth) authorized(presented string) bool {
	want := sha256.Sum256([]byte(a.secret))
	got := sha256.Sum256([]byte(presented))
	return hmac.Equal(want[:], got[:])
}
