package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/fitiplus/internal/adapter"
	"github.com/MKhiriev/fitiplus/internal/app"
	"github.com/MKhiriev/fitiplus/models"
)

func success(identity *models.Identity, message string) models.Result {
	return models.Result{Kind: models.ResultSuccess, Identity: identity, Message: message}
}

func localFailure(cause error, message string) models.Result {
	return models.Result{Kind: models.ResultFailure, Message: message, Err: cause}
}

// classify turns an adapter error into a Result. generic is the fallback
// message for error statuses without a server message; unauthorized is the
// fallback for 401.
func classify(err error, generic, unauthorized string) models.Result {
	var apiErr *adapter.APIError
	if !errors.As(err, &apiErr) {
		return models.Result{
			Kind:    models.ResultFailure,
			Message: app.MsgNetworkError,
			Err:     fmt.Errorf("%w: %w", ErrNetwork, err),
		}
	}

	r := models.Result{Kind: models.ResultFailure, StatusCode: apiErr.StatusCode}
	switch {
	case errors.Is(err, adapter.ErrTimeout):
		r.Kind = models.ResultTimeout
		r.Message = app.MsgTimeout
		r.Err = fmt.Errorf("%w: %w", ErrTimeout, err)
	case errors.Is(err, adapter.ErrUnauthorized):
		r.Message = orDefault(apiErr.Message, unauthorized)
		r.Err = fmt.Errorf("%w: %w", ErrUnauthorized, err)
	case errors.Is(err, adapter.ErrServer):
		r.Message = orDefault(apiErr.Message, generic)
		r.Err = fmt.Errorf("%w: %w", ErrServer, err)
	case errors.Is(err, adapter.ErrMalformedResponse):
		r.Message = app.MsgMalformedResponse
		r.Err = fmt.Errorf("%w: %w", ErrNetwork, err)
	default:
		r.Message = app.MsgNetworkError
		r.Err = fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	return r
}

func orDefault(s, def string) string {
	if s != "" {
		return s
	}
	return def
}
