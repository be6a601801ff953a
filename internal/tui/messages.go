package tui

import (
	"github.com/MKhiriev/fitiplus/internal/guard"
	"github.com/MKhiriev/fitiplus/models"
)

// NavigateTo asks [RootModel] to open Page. The move goes through the route
// guards first; Payload, if any, is delivered to the page that ends up open.
type NavigateTo struct {
	Page    string
	Payload any
}

// routeResolvedMsg carries the outcome of a guarded navigation.
type routeResolvedMsg struct {
	path     string
	decision guard.Decision
	payload  any
}

// noticeMsg opens the dismissible notice with text shown verbatim.
type noticeMsg struct {
	text    string
	failure bool
}

// resultMsg is the completion of an asynchronous gateway call.
type resultMsg struct {
	op     string
	result models.Result
}

type contentLoadedMsg struct {
	stages    []models.OnboardingStage
	goals     []models.Goal
	allergies []models.Allergy
	result    models.Result
}

type welcomeLoadedMsg struct {
	cards  []models.WelcomeCard
	result models.Result
}

type copiedMsg struct{}

type clearStatusMsg struct{}
