package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	tokenIssuer "github.com/61040-fa22/rec5/pkg/jwt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var TimeNow = time.Now

var ErrNoSession = errors.New("no session on request")

// Manager issues session cookies and resolves them to server-side sessions.
type Manager struct {
	logs       *zap.SugaredLogger
	store      *MemoryStore
	tokens     TokenIssuer
	cookieName string
	ttl        time.Duration
}

func NewManager(logger *zap.SugaredLogger, store *MemoryStore, tokens TokenIssuer, cookieName string, ttl time.Duration) *Manager {
	return &Manager{
		logs:       logger,
		store:      store,
		tokens:     tokens,
		cookieName: cookieName,
		ttl:        ttl,
	}
}

// Load resolves the request cookie to a session. Requests without a valid
// cookie get an anonymous session with an empty ID.
func (m *Manager) Load(r *http.Request) Session {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return Session{}
	}

	id, err := m.tokens.Validate(cookie.Value)
	if err != nil {
		m.logs.Debugw("discarding session cookie", "error", err)
		return Session{}
	}

	s, ok := m.store.Get(id, TimeNow())
	if !ok {
		return Session{}
	}
	return s
}

// SetUserID signs userID into the session of r, creating the session and its
// cookie when r has none.
func (m *Manager) SetUserID(w http.ResponseWriter, r *http.Request, userID string) error {
	s, ok := FromContext(r.Context())
	if !ok || s.ID == "" {
		s = Session{
			ID:        uuid.NewString(),
			ExpiresAt: TimeNow().Add(m.ttl),
		}

		token, err := m.tokens.Issue(tokenIssuer.TokenInfo{
			Subject:   s.ID,
			ExpiresAt: s.ExpiresAt,
		})
		if err != nil {
			return fmt.Errorf("issue session token: %w", err)
		}

		http.SetCookie(w, &http.Cookie{
			Name:     m.cookieName,
			Value:    token,
			Path:     "/",
			Expires:  s.ExpiresAt,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	s.UserID = userID
	m.store.Save(s)
	return nil
}

// ClearUserID signs the current user out. A session without a user carries
// nothing, so the record is dropped and the cookie expired.
func (m *Manager) ClearUserID(w http.ResponseWriter, r *http.Request) error {
	s, ok := FromContext(r.Context())
	if !ok || s.ID == "" {
		return ErrNoSession
	}

	m.store.Delete(s.ID)
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// RunJanitor purges expired sessions every interval until ctx is done.
func (m *Manager) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.store.Purge(TimeNow()); n > 0 {
				m.logs.Infow("expired sessions purged", "count", n)
			}
		}
	}
}
