package middleware

import (
	"context"
	"net/http"

	"github.com/61040-fa22/rec5/internal/session"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name SessionManager . SessionManager
type SessionManager interface {
	Load(r *http.Request) session.Session
	ClearUserID(w http.ResponseWriter, r *http.Request) error
}

//counterfeiter:generate -o fake -fake-name UserChecker . UserChecker
type UserChecker interface {
	UserExists(ctx context.Context, userID string) bool
}
