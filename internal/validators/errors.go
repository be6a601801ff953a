package validators

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/fitiplus/internal/app"
	"github.com/MKhiriev/fitiplus/internal/service"
	"github.com/MKhiriev/fitiplus/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

var (
	ErrEmailRequired           = invalid(app.MsgEmailRequired)
	ErrEmailInvalid            = invalid(app.MsgEmailInvalid)
	ErrPasswordRequired        = invalid(app.MsgPasswordRequired)
	ErrNewPasswordRequired     = invalid(app.MsgNewPasswordRequired)
	ErrPasswordTooShort        = invalid(app.MsgPasswordTooShort)
	ErrConfirmPasswordRequired = invalid(app.MsgConfirmPasswordRequired)
	ErrPasswordsMismatch       = invalid(app.MsgPasswordsMismatch)
	ErrNameRequired            = invalid(app.MsgNameRequired)
)

// validationError prints only its message so screens can show it directly.
type validationError struct {
	msg string
}

func invalid(msg string) error {
	return &validationError{msg: msg}
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Unwrap() error { return service.ErrValidation }

// Result converts a validation error into the Failure a gateway call would
// have returned, so screens handle both the same way.
func Result(err error) models.Result {
	var ve *validationError
	if errors.As(err, &ve) {
		return models.Result{Kind: models.ResultFailure, Message: ve.msg, Err: err}
	}
	return models.Result{
		Kind:    models.ResultFailure,
		Message: err.Error(),
		Err:     fmt.Errorf("%w: %w", service.ErrValidation, err),
	}
}
