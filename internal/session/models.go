package session

import "time"

// Session is the server-side state behind a session cookie. An empty UserID
// means nobody is signed in.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
