package session

import (
	tokenIssuer "github.com/61040-fa22/rec5/pkg/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Issue(data tokenIssuer.TokenInfo) (string, error)
	Validate(token string) (string, error)
}
