package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/dtroode/pollkeeper/internal/logger"
	"github.com/dtroode/pollkeeper/internal/model"
	"github.com/dtroode/pollkeeper/internal/password"
)

// Auth verifies HTTP Basic credentials against stored polls.
type Auth struct {
	credentialStore model.CredentialStore
	logger          *logger.Logger
}

func NewAuth(credentialStore model.CredentialStore, logger *logger.Logger) *Auth {
	return &Auth{
		credentialStore: credentialStore,
		logger:          logger,
	}
}

// Verify returns nil when a poll with exactly this login exists and its
// digest equals the hash of plaintext. Unknown logins and wrong passwords
// both yield model.ErrUnauthorized; storage faults are returned wrapped.
func (a *Auth) Verify(ctx context.Context, login, plaintext string) error {
	creds, err := a.credentialStore.GetCredentials(ctx, login)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Debug("Auth service: unknown login", "login", login)
		return model.ErrUnauthorized
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get credentials",
			"login", login,
			"error", err.Error())
		return fmt.Errorf("failed to get credentials: %w", err)
	}

	loginMatch := subtle.ConstantTimeCompare([]byte(login), []byte(creds.Login))
	digestMatch := subtle.ConstantTimeCompare(password.Hash(plaintext), creds.PasswordDigest)
	if loginMatch&digestMatch != 1 {
		a.logger.Debug("Auth service: credentials mismatch", "login", login)
		return model.ErrUnauthorized
	}

	return nil
}
