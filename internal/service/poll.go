package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/pollkeeper/internal/apierror"
	"github.com/dtroode/pollkeeper/internal/logger"
	"github.com/dtroode/pollkeeper/internal/model"
	"github.com/dtroode/pollkeeper/internal/password"
)

type Poll struct {
	pollStore model.PollStore
	logger    *logger.Logger
}

func NewPoll(pollStore model.PollStore, logger *logger.Logger) *Poll {
	return &Poll{
		pollStore: pollStore,
		logger:    logger,
	}
}

// Register hashes the password and stores a new poll. The returned poll
// carries the assigned ID and never the digest.
func (s *Poll) Register(ctx context.Context, params model.RegisterPollParams) (model.Poll, error) {
	s.logger.Debug("Poll service: registering poll", "login", params.Login)

	poll := model.Poll{
		FirstName:      params.FirstName,
		LastName:       params.LastName,
		Age:            params.Age,
		City:           params.City,
		Interests:      params.Interests,
		Login:          params.Login,
		PasswordDigest: password.Hash(params.Password),
	}

	id, err := s.pollStore.Create(ctx, poll)
	if errors.Is(err, model.ErrDuplicateLogin) {
		s.logger.Warn("Poll service: login already registered", "login", params.Login)
		return model.Poll{}, apierror.NewErrLoginTaken(params.Login)
	}
	if err != nil {
		s.logger.Error("Poll service: failed to create poll",
			"login", params.Login,
			"error", err.Error())
		return model.Poll{}, fmt.Errorf("failed to create poll: %w", err)
	}

	poll.ID = id
	poll.PasswordDigest = nil

	s.logger.Info("Poll service: poll registered",
		"login", params.Login,
		"poll_id", id)

	return poll, nil
}

func (s *Poll) List(ctx context.Context, offset, limit int) ([]model.Poll, error) {
	polls, err := s.pollStore.List(ctx, offset, limit)
	if err != nil {
		s.logger.Error("Poll service: failed to list polls",
			"offset", offset,
			"limit", limit,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list polls: %w", err)
	}
	return polls, nil
}

// Get returns model.ErrNotFound unwrapped when no poll has this id.
func (s *Poll) Get(ctx context.Context, id int64) (model.Poll, error) {
	poll, err := s.pollStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Poll{}, model.ErrNotFound
	}
	if err != nil {
		s.logger.Error("Poll service: failed to get poll",
			"poll_id", id,
			"error", err.Error())
		return model.Poll{}, fmt.Errorf("failed to get poll: %w", err)
	}
	return poll, nil
}
