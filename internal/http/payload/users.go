package payload

import (
	"errors"

	"github.com/61040-fa22/rec5/internal/repository"

	"github.com/jellydator/validation"
)

var errNothingToUpdate = errors.New("username or password is required")

// UpdateUserRequest is the body of a profile update. Omitted fields are kept.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

func (u *UpdateUserRequest) Validate() error {
	if u.Username == nil && u.Password == nil {
		return errNothingToUpdate
	}

	return validation.ValidateStruct(u,
		validation.Field(&u.Username, validation.NilOrNotEmpty),
		validation.Field(&u.Password, validation.NilOrNotEmpty),
	)
}

func (u UpdateUserRequest) ToUserUpdate() repository.UserUpdate {
	return repository.UserUpdate{
		Username: u.Username,
		Password: u.Password,
	}
}
