package handler

import "github.com/61040-fa22/rec5/internal/repository"

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Message string               `json:"message,omitempty"` // short message for humans
	User    *repository.UserView `json:"user,omitempty"`    // sanitized user, never the raw record
	Error   string               `json:"error,omitempty"`   // error detail (if any)
}

type AuthorResponse struct {
	Author repository.UserView `json:"author"`
}
