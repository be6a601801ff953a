// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fitiplus/internal/app"
	"github.com/MKhiriev/fitiplus/internal/service"
	"github.com/MKhiriev/fitiplus/models"
)

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewAuthFormValidator()
	ctx := context.Background()

	require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)

	login := models.LoginRequest{Email: "ana@fitiplus.com", Password: "x"}
	require.NoError(t, v.Validate(ctx, login))
	require.NoError(t, v.Validate(ctx, &login))

	reset := models.PasswordResetRequest{Email: "ana@fitiplus.com"}
	require.NoError(t, v.Validate(ctx, reset))
	require.NoError(t, v.Validate(ctx, &reset))

	require.ErrorIs(t, v.Validate(ctx, login, "nope"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestValidate_Login(t *testing.T) {
	v := NewAuthFormValidator()

	tests := []struct {
		name string
		req  models.LoginRequest
		want error
	}{
		{"ok", models.LoginRequest{Email: "admin@fitiplus.com", Password: "admin123"}, nil},
		{"short password is fine on login", models.LoginRequest{Email: "a@b.co", Password: "1"}, nil},
		{"empty email", models.LoginRequest{Password: "x"}, ErrEmailRequired},
		{"blank email", models.LoginRequest{Email: "   ", Password: "x"}, ErrEmailRequired},
		{"empty password checked before format", models.LoginRequest{Email: "bad"}, ErrPasswordRequired},
		{"bad format", models.LoginRequest{Email: "ana@fitiplus", Password: "x"}, ErrEmailInvalid},
		{"space inside", models.LoginRequest{Email: "an a@fitiplus.com", Password: "x"}, ErrEmailInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, service.ErrValidation)
		})
	}
}

func TestValidate_LoginFieldScope(t *testing.T) {
	v := NewAuthFormValidator()
	req := models.LoginRequest{Email: "ana@fitiplus.com"}

	assert.NoError(t, v.Validate(context.Background(), req, FieldEmail))
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldPassword), ErrPasswordRequired)
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestValidate_Register(t *testing.T) {
	v := NewAuthFormValidator()
	valid := models.RegisterForm{Name: "Ana", Email: "ana@fitiplus.com", Password: "secret1", ConfirmPassword: "secret1"}

	tests := []struct {
		name   string
		mutate func(*models.RegisterForm)
		want   error
	}{
		{"ok", func(*models.RegisterForm) {}, nil},
		{"no name", func(f *models.RegisterForm) { f.Name = " " }, ErrNameRequired},
		{"no email", func(f *models.RegisterForm) { f.Email = "" }, ErrEmailRequired},
		{"bad email", func(f *models.RegisterForm) { f.Email = "ana" }, ErrEmailInvalid},
		{"no password", func(f *models.RegisterForm) { f.Password = "" }, ErrNewPasswordRequired},
		{"short password", func(f *models.RegisterForm) { f.Password, f.ConfirmPassword = "12345", "12345" }, ErrPasswordTooShort},
		{"six runes", func(f *models.RegisterForm) { f.Password, f.ConfirmPassword = "contra", "contra" }, nil},
		{"no confirmation", func(f *models.RegisterForm) { f.ConfirmPassword = "" }, ErrConfirmPasswordRequired},
		{"mismatch", func(f *models.RegisterForm) { f.ConfirmPassword = "secret2" }, ErrPasswordsMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)
			err := v.Validate(context.Background(), &form)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRegisterForm_Request(t *testing.T) {
	form := models.RegisterForm{Name: "Ana", Email: "ana@fitiplus.com", Password: "secret1", ConfirmPassword: "secret1"}
	assert.Equal(t, models.RegisterRequest{Name: "Ana", Email: "ana@fitiplus.com", Password: "secret1"}, form.Request())
}

// ---------------------------------------------------------------------------
// ChangePassword / reset
// ---------------------------------------------------------------------------

func TestValidate_ChangePassword(t *testing.T) {
	v := NewAuthFormValidator()
	ctx := context.Background()

	ok := models.ChangePasswordForm{CurrentPassword: "old", NewPassword: "secret1", ConfirmPassword: "secret1"}
	assert.NoError(t, v.Validate(ctx, ok))

	assert.ErrorIs(t, v.Validate(ctx, models.ChangePasswordForm{NewPassword: "secret1", ConfirmPassword: "secret1"}), ErrPasswordRequired)
	assert.ErrorIs(t, v.Validate(ctx, models.ChangePasswordForm{CurrentPassword: "old", NewPassword: "abc", ConfirmPassword: "abc"}), ErrPasswordTooShort)
	assert.ErrorIs(t, v.Validate(ctx, models.ChangePasswordForm{CurrentPassword: "old", NewPassword: "secret1", ConfirmPassword: "x"}), ErrPasswordsMismatch)
}

func TestValidate_PasswordReset(t *testing.T) {
	v := NewAuthFormValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), models.PasswordResetRequest{}), ErrEmailRequired)
	assert.ErrorIs(t, v.Validate(context.Background(), models.PasswordResetRequest{Email: "x@y"}), ErrEmailInvalid)
}

// ---------------------------------------------------------------------------
// Result
// ---------------------------------------------------------------------------

func TestResult(t *testing.T) {
	r := Result(ErrPasswordsMismatch)
	assert.Equal(t, models.ResultFailure, r.Kind)
	assert.Equal(t, app.MsgPasswordsMismatch, r.Message)
	assert.Equal(t, app.MsgPasswordsMismatch, ErrPasswordsMismatch.Error())
	assert.ErrorIs(t, r.Err, service.ErrValidation)
	assert.Zero(t, r.StatusCode)

	r = Result(ErrUnsupportedType)
	assert.ErrorIs(t, r.Err, service.ErrValidation)
	assert.ErrorIs(t, r.Err, ErrUnsupportedType)
	assert.True(t, errors.Is(r.Err, ErrUnsupportedType))
}
