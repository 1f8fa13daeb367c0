package core

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/61040-fa22/rec5/internal/repository"

	"go.uber.org/zap"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUnauthorized error = errors.New("no user is signed in")

// Accounts implements the account use cases on top of a UserStore.
type Accounts struct {
	logs  *zap.SugaredLogger
	store UserStore
}

// NewAccounts is a constructor function for the Accounts type.
func NewAccounts(logger *zap.SugaredLogger, store UserStore) *Accounts {
	return &Accounts{
		logs:  logger,
		store: store,
	}
}

// CreateUser adds a new account. Duplicate usernames are accepted.
func (a *Accounts) CreateUser(ctx context.Context, creds Credentials) (repository.UserView, error) {
	user := a.store.AddOne(creds.Username, creds.Password)

	a.logs.Infow("user created", "userId", user.ID, "username", user.Username)

	return repository.ConstructUserResponse(user), nil
}

// SignIn looks the user up by username and checks the password.
func (a *Accounts) SignIn(ctx context.Context, creds Credentials) (repository.UserView, error) {
	user, ok := a.store.FindOneByUsername(creds.Username)
	if !ok {
		return repository.UserView{}, ErrUserNotFound
	}

	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(creds.Password)) != 1 {
		return repository.UserView{}, ErrIncorrectPassword
	}

	a.logs.Infow("user signed in", "userId", user.ID)

	return repository.ConstructUserResponse(user), nil
}

// GetAuthor returns the first user registered under username.
func (a *Accounts) GetAuthor(ctx context.Context, username string) (repository.UserView, error) {
	user, ok := a.store.FindOneByUsername(username)
	if !ok {
		return repository.UserView{}, ErrUserNotFound
	}

	return repository.ConstructUserResponse(user), nil
}

// UpdateUser applies update to the signed in user.
func (a *Accounts) UpdateUser(ctx context.Context, userID string, update repository.UserUpdate) (repository.UserView, error) {
	if userID == "" {
		return repository.UserView{}, ErrUnauthorized
	}

	user, ok := a.store.UpdateOne(userID, update)
	if !ok {
		return repository.UserView{}, ErrUserNotFound
	}

	a.logs.Infow("user updated",
		"userId", user.ID,
		"usernameChanged", update.Username != nil,
		"passwordChanged", update.Password != nil)

	return repository.ConstructUserResponse(user), nil
}

// DeleteUser removes the signed in user.
func (a *Accounts) DeleteUser(ctx context.Context, userID string) (repository.UserView, error) {
	if userID == "" {
		return repository.UserView{}, ErrUnauthorized
	}

	user, ok := a.store.DeleteOne(userID)
	if !ok {
		return repository.UserView{}, ErrUserNotFound
	}

	a.logs.Infow("user deleted", "userId", user.ID)

	return repository.ConstructUserResponse(user), nil
}

// UserExists reports whether userID still names a stored user.
func (a *Accounts) UserExists(ctx context.Context, userID string) bool {
	_, ok := a.store.FindOneByUserID(userID)
	return ok
}
