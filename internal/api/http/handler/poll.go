package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/dtroode/pollkeeper/internal/api/http/response"
	"github.com/dtroode/pollkeeper/internal/apierror"
	"github.com/dtroode/pollkeeper/internal/logger"
	"github.com/dtroode/pollkeeper/internal/model"
)

const (
	defaultOffset = 0
	defaultLimit  = 10

	maxRequestBodyBytes = 1 << 20
)

// PollService defines poll registration and read operations.
type PollService interface {
	Register(ctx context.Context, params model.RegisterPollParams) (model.Poll, error)
	List(ctx context.Context, offset, limit int) ([]model.Poll, error)
	Get(ctx context.Context, id int64) (model.Poll, error)
}

type registerRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  string  `json:"last_name" validate:"required,max=100"`
	Age       int     `json:"age" validate:"gt=0"`
	City      string  `json:"city" validate:"required,max=100"`
	Interests *string `json:"interests" validate:"omitempty,max=256"`
	Login     string  `json:"login" validate:"required,max=20,login"`
	Password  string  `json:"password" validate:"required,max=48,ascii"`
}

// pollResponse is the public projection of a poll. It never carries credentials.
type pollResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Age       int     `json:"age"`
	City      string  `json:"city"`
	Interests *string `json:"interests"`
}

func newPollResponse(p model.Poll) pollResponse {
	return pollResponse{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Age:       p.Age,
		City:      p.City,
		Interests: p.Interests,
	}
}

// Poll handles HTTP endpoints for polls.
type Poll struct {
	pollService    PollService
	contextManager model.ContextManager
	validate       *validator.Validate
	logger         *logger.Logger
}

// NewPoll creates a new Poll handler.
func NewPoll(pollService PollService, contextManager model.ContextManager, logger *logger.Logger) *Poll {
	return &Poll{
		pollService:    pollService,
		contextManager: contextManager,
		validate:       newValidator(),
		logger:         logger,
	}
}

// Register handles POST /register.
func (h *Poll) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err := dec.Decode(&req); err != nil {
		h.logger.Debug("Poll handler: failed to decode register request", "error", err.Error())
		handleError(w, apierror.NewErrInvalidJSON())
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.logger.Debug("Poll handler: register request failed validation",
			"login", req.Login,
			"error", err.Error())
		handleError(w, err)
		return
	}

	poll, err := h.pollService.Register(r.Context(), model.RegisterPollParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
		City:      req.City,
		Interests: req.Interests,
		Login:     req.Login,
		Password:  req.Password,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	h.logger.Info("Poll handler: poll registered",
		"poll_id", poll.ID,
		"login", poll.Login)

	response.JSON(w, http.StatusCreated, newPollResponse(poll))
}

// List handles GET /polls.
func (h *Poll) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	offset, err := intParam(query.Get("offset"), defaultOffset)
	if err != nil || offset < 0 {
		handleError(w, apierror.NewErrInvalidParameter("offset", "must be a non-negative integer"))
		return
	}

	limit, err := intParam(query.Get("limit"), defaultLimit)
	if err != nil || limit <= 0 {
		handleError(w, apierror.NewErrInvalidParameter("limit", "must be a positive integer"))
		return
	}

	login, _ := h.contextManager.GetLoginFromContext(r.Context())
	h.logger.Debug("Poll handler: listing polls",
		"requested_by", login,
		"offset", offset,
		"limit", limit)

	polls, err := h.pollService.List(r.Context(), offset, limit)
	if err != nil {
		handleError(w, err)
		return
	}

	resp := make([]pollResponse, 0, len(polls))
	for _, p := range polls {
		resp = append(resp, newPollResponse(p))
	}

	response.JSON(w, http.StatusOK, resp)
}

// Get handles GET /polls/{id}. An unknown id yields 204 with an empty body.
func (h *Poll) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		handleError(w, apierror.NewErrInvalidParameter("id", "must be an integer"))
		return
	}

	login, _ := h.contextManager.GetLoginFromContext(r.Context())
	h.logger.Debug("Poll handler: getting poll",
		"requested_by", login,
		"poll_id", id)

	poll, err := h.pollService.Get(r.Context(), id)
	if errors.Is(err, model.ErrNotFound) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, newPollResponse(poll))
}

func intParam(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
