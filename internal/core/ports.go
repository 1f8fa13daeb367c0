package core

import (
	"github.com/61040-fa22/rec5/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name UserStore . UserStore
type UserStore interface {
	AddOne(username, password string) repository.User
	FindOneByUserID(userID string) (repository.User, bool)
	FindOneByUsername(username string) (repository.User, bool)
	UpdateOne(userID string, update repository.UserUpdate) (repository.User, bool)
	DeleteOne(userID string) (repository.User, bool)
}
