package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/MKhiriev/fitiplus/models"
)

// Field names accepted by AuthFormValidator.Validate.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldNewPassword     = "new_password"
	FieldConfirmPassword = "confirm_password"
)

// MinPasswordLength applies to new passwords only. Login accepts whatever
// the account already has.
const MinPasswordLength = 6

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthFormValidator validates the login, registration, password change and
// password reset forms.
type AuthFormValidator struct{}

func NewAuthFormValidator() Validator {
	return &AuthFormValidator{}
}

// Validate supports models.LoginRequest, models.RegisterForm,
// models.ChangePasswordForm and models.PasswordResetRequest, by value or
// pointer. Rules run in the order the screens show them and the first
// failure is returned.
func (v *AuthFormValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.RegisterForm:
		return v.validateRegister(value, fields...)
	case *models.RegisterForm:
		return v.validateRegister(*value, fields...)

	case models.ChangePasswordForm:
		return v.validateChangePassword(value, fields...)
	case *models.ChangePasswordForm:
		return v.validateChangePassword(*value, fields...)

	case models.PasswordResetRequest:
		return validateEmail(value.Email)
	case *models.PasswordResetRequest:
		return validateEmail(value.Email)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthFormValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		// both required checks come before the format check
		if strings.TrimSpace(req.Email) == "" {
			return ErrEmailRequired
		}
		if strings.TrimSpace(req.Password) == "" {
			return ErrPasswordRequired
		}
		return validateEmail(req.Email)
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if strings.TrimSpace(req.Password) == "" {
				return ErrPasswordRequired
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *AuthFormValidator) validateRegister(form models.RegisterForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldNewPassword, FieldConfirmPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(form.Name) == "" {
				return ErrNameRequired
			}
		case FieldEmail:
			if err := validateEmail(form.Email); err != nil {
				return err
			}
		case FieldNewPassword, FieldPassword:
			if err := validateNewPassword(form.Password); err != nil {
				return err
			}
		case FieldConfirmPassword:
			if err := validateConfirmation(form.Password, form.ConfirmPassword); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *AuthFormValidator) validateChangePassword(form models.ChangePasswordForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPassword, FieldNewPassword, FieldConfirmPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldPassword:
			if strings.TrimSpace(form.CurrentPassword) == "" {
				return ErrPasswordRequired
			}
		case FieldNewPassword:
			if err := validateNewPassword(form.NewPassword); err != nil {
				return err
			}
		case FieldConfirmPassword:
			if err := validateConfirmation(form.NewPassword, form.ConfirmPassword); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	if !emailRegexp.MatchString(email) {
		return ErrEmailInvalid
	}
	return nil
}

func validateNewPassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return ErrNewPasswordRequired
	}
	if len([]rune(password)) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

func validateConfirmation(password, confirm string) error {
	if strings.TrimSpace(confirm) == "" {
		return ErrConfirmPasswordRequired
	}
	if password != confirm {
		return ErrPasswordsMismatch
	}
	return nil
}
