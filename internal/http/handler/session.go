package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/61040-fa22/rec5/internal/core"
	"github.com/61040-fa22/rec5/internal/http/handler/middleware"
	"github.com/61040-fa22/rec5/internal/http/payload"
	"github.com/61040-fa22/rec5/internal/session"
)

var (
	SignIn  = "POST /api/session"
	SignOut = "DELETE /api/session"
)

const signedOutMsg = "You have been logged out successfully."

func (h *AccountHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.CredentialsRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not sign in",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SignIn,
			"request_id", requestId)
		return
	}

	user, err := h.accounts.SignIn(r.Context(), req.ToCoreCredentials())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusBadRequest
			resp.Error = "You have entered an incorrect username or password"
		} else {
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("sign in failed",
			"error", err,
			"handler", SignIn,
			"request_id", requestId)
		return
	}

	if err := h.sessions.SetUserID(w, r, user.ID); err != nil {
		h.respond(w, Response{
			Message: "Login failed",
			Error:   oopsErr,
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to start session",
			"error", err,
			"handler", SignIn,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: "You have logged in successfully",
		User:    &user,
	}, http.StatusCreated,
		requestId)
}

func (h *AccountHandler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	err := h.sessions.ClearUserID(w, r)
	if err != nil && !errors.Is(err, session.ErrNoSession) {
		h.logs.Errorw("failed to clear session",
			"error", err,
			"handler", SignOut,
			"request_id", requestId)
		http.Error(w, oopsErr, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(signedOutMsg)); err != nil {
		h.logs.Errorw("failed to write response",
			"error", err,
			"handler", SignOut,
			"request_id", requestId)
	}
}
