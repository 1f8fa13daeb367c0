package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/61040-fa22/rec5/internal/session"

	"go.uber.org/zap"
)

const userGoneMsg = "This user no longer exists"

type sessionMiddleware struct {
	logs     *zap.SugaredLogger
	sessions SessionManager
	users    UserChecker
}

func NewSessionMiddleware(logger *zap.SugaredLogger, sessions SessionManager, users UserChecker) *sessionMiddleware {
	return &sessionMiddleware{
		logs:     logger,
		sessions: sessions,
		users:    users,
	}
}

// Sessions attaches the request's session to its context.
func (m *sessionMiddleware) Sessions(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := m.sessions.Load(r)
		next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), s)))
	})
}

// RequireLiveUser rejects requests whose session names a deleted user. The
// stale user id is dropped from the session first.
func (m *sessionMiddleware) RequireLiveUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.dropStaleUser(w, r) {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": userGoneMsg,
		})
	})
}

// DropStaleUser signs out a session whose user was deleted and serves the
// request as anonymous.
func (m *sessionMiddleware) DropStaleUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.dropStaleUser(w, r) {
			r = r.WithContext(session.WithSession(r.Context(), session.Session{}))
		}
		next.ServeHTTP(w, r)
	})
}

// dropStaleUser clears the session user when it no longer exists and reports
// whether it did.
func (m *sessionMiddleware) dropStaleUser(w http.ResponseWriter, r *http.Request) bool {
	userID := session.UserIDFromContext(r.Context())
	if userID == "" || m.users.UserExists(r.Context(), userID) {
		return false
	}

	requestID := RequestIDFrom(r.Context())
	if err := m.sessions.ClearUserID(w, r); err != nil {
		m.logs.Errorw("failed to clear stale session user",
			"error", err,
			"request_id", requestID)
	}

	m.logs.Infow("session user no longer exists",
		"userId", userID,
		"request_id", requestID)
	return true
}
