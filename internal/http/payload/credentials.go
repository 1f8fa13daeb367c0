package payload

import (
	"github.com/61040-fa22/rec5/internal/core"

	"github.com/jellydator/validation"
)

// CredentialsRequest is the body of account creation and sign in.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *CredentialsRequest) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Username, validation.Required),
		validation.Field(&c.Password, validation.Required),
	)
}

func (c CredentialsRequest) ToCoreCredentials() core.Credentials {
	return core.Credentials{
		Username: c.Username,
		Password: c.Password,
	}
}
