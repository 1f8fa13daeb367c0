package handler

import (
	"context"
	"net/http"

	"github.com/61040-fa22/rec5/internal/core"
	"github.com/61040-fa22/rec5/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name AccountService . AccountService
type AccountService interface {
	CreateUser(ctx context.Context, creds core.Credentials) (repository.UserView, error)
	SignIn(ctx context.Context, creds core.Credentials) (repository.UserView, error)
	GetAuthor(ctx context.Context, username string) (repository.UserView, error)
	UpdateUser(ctx context.Context, userID string, update repository.UserUpdate) (repository.UserView, error)
	DeleteUser(ctx context.Context, userID string) (repository.UserView, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name SessionWriter . SessionWriter
type SessionWriter interface {
	SetUserID(w http.ResponseWriter, r *http.Request, userID string) error
	ClearUserID(w http.ResponseWriter, r *http.Request) error
}

// SessionGuard wraps routes that depend on the session user still existing.
type SessionGuard interface {
	RequireLiveUser(next http.Handler) http.Handler
	DropStaleUser(next http.Handler) http.Handler
}
