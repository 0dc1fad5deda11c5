package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/pollkeeper/internal/apierror"
	"github.com/dtroode/pollkeeper/internal/model"
)

func TestHandleError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "api error passthrough",
			in:       apierror.NewErrLoginTaken("ann"),
			wantCode: http.StatusBadRequest,
			wantMsg:  apierror.NewErrLoginTaken("ann").Message,
		},
		{
			name:     "wrapped api error",
			in:       fmt.Errorf("register: %w", apierror.NewErrInvalidJSON()),
			wantCode: http.StatusBadRequest,
			wantMsg:  "invalid JSON body",
		},
		{
			name:     "unauthorized",
			in:       model.ErrUnauthorized,
			wantCode: http.StatusUnauthorized,
			wantMsg:  "incorrect login or password",
		},
		{
			name:     "other -> internal",
			in:       errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			handleError(rec, tt.in)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec).Message)
		})
	}
}
