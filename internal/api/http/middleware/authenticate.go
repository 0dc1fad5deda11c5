package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/dtroode/pollkeeper/internal/api/http/response"
	"github.com/dtroode/pollkeeper/internal/apierror"
	"github.com/dtroode/pollkeeper/internal/logger"
	"github.com/dtroode/pollkeeper/internal/model"
)

const basicChallenge = `Basic realm="polls"`

// AuthService verifies a login and plaintext password pair.
type AuthService interface {
	Verify(ctx context.Context, login, plaintext string) error
}

// Authenticate checks HTTP Basic credentials and injects the login into context.
type Authenticate struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{authService: authService, contextManager: contextManager, logger: logger}
}

// Handler rejects requests without valid credentials before next runs.
func (m *Authenticate) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		login, plaintext, ok := r.BasicAuth()
		if !ok {
			m.logger.Debug("Authenticate middleware: missing basic credentials", "path", r.URL.Path)
			m.challenge(w)
			return
		}

		err := m.authService.Verify(r.Context(), login, plaintext)
		if errors.Is(err, model.ErrUnauthorized) {
			m.challenge(w)
			return
		}
		if err != nil {
			m.logger.Error("Authenticate middleware: failed to verify credentials",
				"login", login,
				"error", err.Error())
			response.Error(w, apierror.NewErrInternal())
			return
		}

		ctx := m.contextManager.SetLoginToContext(r.Context(), login)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Authenticate) challenge(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", basicChallenge)
	response.Error(w, apierror.NewErrUnauthorized())
}
