// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthResponse is the success shape of login, register and refresh.
//
// Older API builds send the access token as "token"; [AuthResponse.Access]
// resolves both.
type AuthResponse struct {
	User                  *Identity `json:"user,omitempty"`
	AccessToken           string    `json:"accessToken,omitempty"`
	Token                 string    `json:"token,omitempty"`
	RefreshToken          string    `json:"refreshToken,omitempty"`
	Message               string    `json:"message,omitempty"`
	IsOnboardingCompleted bool      `json:"isOnboardingCompleted,omitempty"`
}

// Access returns the access token regardless of which field carried it.
func (a AuthResponse) Access() string {
	if a.AccessToken != "" {
		return a.AccessToken
	}
	return a.Token
}

// MessageResponse is the shape of endpoints that answer with a message only
// (logout, password change and reset).
type MessageResponse struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the error shape of every endpoint.
type ErrorResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ProfileResponse wraps GET /user/profile. Some API builds return the
// identity at the top level instead of under "user".
type ProfileResponse struct {
	User *Identity `json:"user,omitempty"`
}
