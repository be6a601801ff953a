// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Identity is the authenticated person as reported by the FitiPlus API.
// It is owned by the session store and replaced wholesale on login, refresh
// of the profile, and cleared on logout.
type Identity struct {
	// ID is the server-side unique identifier. Required.
	ID string `json:"id"`

	// Email is unique per account. Required.
	Email string `json:"email"`

	// Name is the display name. Some API versions send only the split
	// FirstName/LastName pair instead.
	Name      string `json:"name,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`

	Role   string `json:"role,omitempty"`
	Avatar string `json:"avatar,omitempty"`

	// Contact and demographic data collected during onboarding.
	Phone     string `json:"phone,omitempty"`
	BirthDate string `json:"birthDate,omitempty"`
	Gender    string `json:"gender,omitempty"`

	// Preferences is nil until the user completes the questionnaire.
	Preferences *Preferences `json:"preferences,omitempty"`
}

// Preferences holds the nutrition and fitness preference set of a user.
type Preferences struct {
	DietaryRestrictions []string `json:"dietaryRestrictions,omitempty"`
	Allergies           []string `json:"allergies,omitempty"`
	FitnessGoals        []string `json:"fitnessGoals,omitempty"`
	ActivityLevel       string   `json:"activityLevel,omitempty"`
}

// Valid reports whether the identity carries the fields every session needs.
func (i *Identity) Valid() bool {
	return i != nil && strings.TrimSpace(i.ID) != "" && strings.TrimSpace(i.Email) != ""
}

// DisplayName returns Name, falls back to "FirstName LastName" and finally
// to Email.
func (i *Identity) DisplayName() string {
	if i == nil {
		return ""
	}
	if i.Name != "" {
		return i.Name
	}
	if full := strings.TrimSpace(i.FirstName + " " + i.LastName); full != "" {
		return full
	}
	return i.Email
}

// Clone returns a deep copy so callers can't mutate store-owned state.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	c := *i
	if i.Preferences != nil {
		p := *i.Preferences
		p.DietaryRestrictions = append([]string(nil), i.Preferences.DietaryRestrictions...)
		p.Allergies = append([]string(nil), i.Preferences.Allergies...)
		p.FitnessGoals = append([]string(nil), i.Preferences.FitnessGoals...)
		c.Preferences = &p
	}
	return &c
}
