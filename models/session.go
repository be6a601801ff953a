// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session is a point-in-time snapshot of the session store.
type Session struct {
	Identity     *Identity
	AccessToken  string
	RefreshToken string

	// Offline is true when AccessToken was minted locally by the offline
	// demo login rather than issued by the API.
	Offline bool
}

// Authenticated reports whether both the identity and the access token are
// present.
func (s Session) Authenticated() bool {
	return s.Identity != nil && s.AccessToken != ""
}
