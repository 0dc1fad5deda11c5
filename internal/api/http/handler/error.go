package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/dtroode/pollkeeper/internal/api/http/response"
	"github.com/dtroode/pollkeeper/internal/apierror"
	"github.com/dtroode/pollkeeper/internal/model"
)

func handleError(w http.ResponseWriter, err error) {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		response.Error(w, apiErr)
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]apierror.FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, apierror.FieldError{
				Field: fe.Field(),
				Rule:  fe.Tag(),
				Param: fe.Param(),
			})
		}
		response.Error(w, apierror.NewErrValidation(fields))
		return
	}

	if errors.Is(err, model.ErrUnauthorized) {
		response.Error(w, apierror.NewErrUnauthorized())
		return
	}

	response.Error(w, apierror.NewErrInternal())
}
