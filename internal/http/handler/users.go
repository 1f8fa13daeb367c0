package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/61040-fa22/rec5/internal/core"
	"github.com/61040-fa22/rec5/internal/http/handler/middleware"
	"github.com/61040-fa22/rec5/internal/http/payload"
	"github.com/61040-fa22/rec5/internal/session"

	"go.uber.org/zap"
)

var (
	CreateUser    = "POST /api/users"
	GetAuthor     = "GET /api/users/{author}"
	GetAuthorBare = "GET /api/users"
	UpdateUser    = "PUT /api/users"
	DeleteUser    = "DELETE /api/users"
)

type AccountHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	accounts         AccountService
	sessions         SessionWriter
}

func NewAccountHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, accountService AccountService, sessions SessionWriter) *AccountHandler {
	return &AccountHandler{
		logs:             logger,
		requestValidator: requestValidator,
		accounts:         accountService,
		sessions:         sessions,
	}
}

func (h *AccountHandler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.CredentialsRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not create account",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateUser,
			"request_id", requestId)
		return
	}

	user, err := h.accounts.CreateUser(r.Context(), req.ToCoreCredentials())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not create account",
			Error:   oopsErr,
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to create user",
			"error", err,
			"handler", CreateUser,
			"request_id", requestId)
		return
	}

	if err := h.sessions.SetUserID(w, r, user.ID); err != nil {
		h.respond(w, Response{
			Message: "Account created but sign in failed",
			Error:   oopsErr,
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to start session",
			"error", err,
			"handler", CreateUser,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: fmt.Sprintf("Your account was created successfully. You have been logged in as %s", user.Name),
		User:    &user,
	}, http.StatusCreated,
		requestId)
}

func (h *AccountHandler) HandleGetAuthor(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	author := r.PathValue("author")
	if author == "" {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "author parameter is required",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("missing author parameter",
			"handler", GetAuthor,
			"request_id", requestId)
		return
	}

	user, err := h.accounts.GetAuthor(r.Context(), author)
	if err != nil {
		resp := Response{
			Message: "Could not find author",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = fmt.Sprintf("no user named %q", author)
		} else {
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to get author",
			"error", err,
			"author", author,
			"handler", GetAuthor,
			"request_id", requestId)
		return
	}

	h.respond(w, AuthorResponse{Author: user}, http.StatusOK, requestId)
}

func (h *AccountHandler) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	userID := session.UserIDFromContext(r.Context())
	if userID == "" {
		h.respondUnauthorized(w, UpdateUser, requestId)
		return
	}

	var req payload.UpdateUserRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not update profile",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateUser,
			"request_id", requestId)
		return
	}

	user, err := h.accounts.UpdateUser(r.Context(), userID, req.ToUserUpdate())
	if err != nil {
		h.respondAccountErr(w, err, "Could not update profile", UpdateUser, requestId)
		return
	}

	h.respond(w, Response{
		Message: "Your profile was updated successfully.",
		User:    &user,
	}, http.StatusOK,
		requestId)
}

func (h *AccountHandler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	userID := session.UserIDFromContext(r.Context())
	if userID == "" {
		h.respondUnauthorized(w, DeleteUser, requestId)
		return
	}

	if _, err := h.accounts.DeleteUser(r.Context(), userID); err != nil {
		h.respondAccountErr(w, err, "Could not delete account", DeleteUser, requestId)
		return
	}

	if err := h.sessions.ClearUserID(w, r); err != nil {
		h.logs.Errorw("failed to clear session after delete",
			"error", err,
			"handler", DeleteUser,
			"request_id", requestId)
	}

	h.logs.Infow("account deleted",
		"userId", userID,
		"handler", DeleteUser,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "Your account has been deleted successfully.",
	}, http.StatusOK,
		requestId)
}

func (h *AccountHandler) respondUnauthorized(w http.ResponseWriter, handler, requestId string) {
	h.respond(w, Response{
		Message: "Authentication failed",
		Error:   "you must be signed in",
	}, http.StatusUnauthorized,
		requestId)
	h.logs.Errorw("no signed in user on session",
		"handler", handler,
		"request_id", requestId)
}

func (h *AccountHandler) respondAccountErr(w http.ResponseWriter, err error, message, handler, requestId string) {
	resp := Response{
		Message: message,
	}
	httpCode := http.StatusInternalServerError
	if errors.Is(err, core.ErrUnauthorized) {
		httpCode = http.StatusUnauthorized
		resp.Error = err.Error()
	} else if errors.Is(err, core.ErrUserNotFound) {
		httpCode = http.StatusNotFound
		resp.Error = err.Error()
	} else {
		resp.Error = oopsErr
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw("account operation failed",
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

func (h *AccountHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
