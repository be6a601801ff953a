// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// WelcomeCard is a card shown on the presentation carousel.
type WelcomeCard struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// OnboardingStage describes one step of the onboarding questionnaire.
type OnboardingStage struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ContentType string `json:"contentType"`
}

// Goal is a selectable fitness goal.
type Goal struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Allergy is a selectable food allergy.
type Allergy struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type WelcomeCardsResponse struct {
	Cards []WelcomeCard `json:"cards"`
}

type OnboardingStagesResponse struct {
	Stages []OnboardingStage `json:"stages"`
}

type GoalsResponse struct {
	Goals []Goal `json:"goals"`
}

type AllergiesResponse struct {
	Allergies []Allergy `json:"allergies"`
}
