// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the session gateway: the operations that talk
// to the FitiPlus API through [adapter.ServerAdapter], update the
// [session.Store] on success, and classify every outcome into a
// [models.Result].
//
// No exported method returns a Go error. Callers inspect Result.Kind, show
// Result.Message, and match Result.Err with errors.Is against the sentinels
// in errors.go.
package service

import (
	"context"

	"github.com/MKhiriev/fitiplus/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Connectivity reports whether the API is believed reachable.
type Connectivity interface {
	Online() bool
}

// ClientAuthService is the session gateway.
type ClientAuthService interface {
	// Login authenticates against the API, or against the offline demo
	// credentials when Connectivity reports offline and demo mode is on.
	Login(ctx context.Context, email, password string) models.Result

	// Register creates an account. A session is started only if the API
	// returns an access token.
	Register(ctx context.Context, req models.RegisterRequest) models.Result

	// Logout sends a best-effort revoke for server-issued sessions, then
	// always clears the session.
	Logout(ctx context.Context) models.Result

	// Refresh exchanges the stored refresh token for a new access token.
	// Without a refresh token it fails with no request.
	Refresh(ctx context.Context) models.Result

	// ChangePassword requires a session.
	ChangePassword(ctx context.Context, currentPassword, newPassword string) models.Result

	RequestPasswordReset(ctx context.Context, email string) models.Result

	// FetchProfile replaces the stored identity with the server's view.
	FetchProfile(ctx context.Context) models.Result

	// IsTokenValid is a presence check, plus an unverified "exp" check when
	// expiry verification is enabled.
	IsTokenValid() bool

	IsAuthenticated() bool

	ClearSession(ctx context.Context)
}

// ClientContentService loads screen content. Each call retries once after a
// successful token refresh if the API answers 401. The returned slice is
// usable even when Result is not OK: stages and goals fall back to built-in
// defaults.
type ClientContentService interface {
	WelcomeCards(ctx context.Context) ([]models.WelcomeCard, models.Result)
	OnboardingStages(ctx context.Context) ([]models.OnboardingStage, models.Result)
	OnboardingGoals(ctx context.Context) ([]models.Goal, models.Result)
	OnboardingAllergies(ctx context.Context) ([]models.Allergy, models.Result)
}
