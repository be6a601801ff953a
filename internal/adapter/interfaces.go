// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the FitiPlus client
// and its REST API.
//
// [ServerAdapter] has one method per endpoint and issues exactly one request
// per call. Failures are returned as [*APIError] values wrapping one of the
// sentinels from errors.go, so callers classify them with [errors.Is]
// and read the status and server message with [errors.As].
package adapter

import (
	"context"

	"github.com/MKhiriev/fitiplus/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the FitiPlus API. Methods that
// need authorization take the bearer token explicitly; the adapter holds no
// session state.
type ServerAdapter interface {
	// Login exchanges credentials for an identity and tokens.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Register creates an account. The response may or may not carry tokens.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Logout revokes token (and the refresh token in req) on the server.
	Logout(ctx context.Context, token string, req models.LogoutRequest) error

	// Refresh exchanges a refresh token for a new access token.
	Refresh(ctx context.Context, req models.RefreshRequest) (models.AuthResponse, error)

	// ChangePassword changes the password of the token's owner.
	ChangePassword(ctx context.Context, token string, req models.ChangePasswordRequest) (models.MessageResponse, error)

	// RequestPasswordReset asks the server to email a reset link.
	RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) (models.MessageResponse, error)

	// FetchProfile returns the identity of the token's owner.
	FetchProfile(ctx context.Context, token string) (*models.Identity, error)

	// WelcomeCards, OnboardingStages, OnboardingGoals and OnboardingAllergies
	// list screen content. token may be empty for anonymous access.
	WelcomeCards(ctx context.Context, token string) ([]models.WelcomeCard, error)
	OnboardingStages(ctx context.Context, token string) ([]models.OnboardingStage, error)
	OnboardingGoals(ctx context.Context, token string) ([]models.Goal, error)
	OnboardingAllergies(ctx context.Context, token string) ([]models.Allergy, error)

	// Ping reports whether the API answers at all. Any HTTP response, even
	// an error status, counts as reachable.
	Ping(ctx context.Context) error
}
