package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/fitiplus/internal/adapter"
	"github.com/MKhiriev/fitiplus/internal/app"
	"github.com/MKhiriev/fitiplus/internal/logger"
	"github.com/MKhiriev/fitiplus/internal/session"
	"github.com/MKhiriev/fitiplus/models"
)

// Shown by the onboarding questionnaire when the API can't provide its own.
var (
	defaultOnboardingStages = []models.OnboardingStage{
		{Step: 1, Title: "Información Personal", Description: "Cuéntanos sobre ti para personalizar tu experiencia", ContentType: "goals"},
		{Step: 2, Title: "Objetivos Fitness", Description: "Define tus metas y objetivos de salud", ContentType: "physical_data"},
		{Step: 3, Title: "Información de Salud", Description: "Ayúdanos a conocer tu estado de salud", ContentType: "medical_conditions"},
	}

	defaultGoals = []models.Goal{
		{ID: "lose_weight", Name: "Perder peso", Description: "Ayudarte a alcanzar tu peso ideal de forma saludable"},
		{ID: "maintain", Name: "Mantener peso", Description: "Mantener tu peso actual con una alimentación balanceada"},
		{ID: "gain_muscle", Name: "Ganar músculo", Description: "Desarrollar masa muscular con la nutrición adecuada"},
	}
)

type clientContentService struct {
	session      *session.Store
	adapter      adapter.ServerAdapter
	auth         ClientAuthService
	connectivity Connectivity
	logger       *logger.Logger
}

// NewClientContentService builds the content loader. auth is used for the
// one refresh attempt after a 401.
func NewClientContentService(
	sessionStore *session.Store,
	serverAdapter adapter.ServerAdapter,
	auth ClientAuthService,
	connectivity Connectivity,
	log *logger.Logger,
) ClientContentService {
	return &clientContentService{
		session:      sessionStore,
		adapter:      serverAdapter,
		auth:         auth,
		connectivity: connectivity,
		logger:       log,
	}
}

// WelcomeCards implements [ClientContentService]. There is no built-in
// fallback, so a failure returns no cards.
func (c *clientContentService) WelcomeCards(ctx context.Context) ([]models.WelcomeCard, models.Result) {
	return fetchContent(ctx, c, "WelcomeCards", c.adapter.WelcomeCards, nil, app.MsgWelcomeCardsFailed)
}

// OnboardingStages implements [ClientContentService].
func (c *clientContentService) OnboardingStages(ctx context.Context) ([]models.OnboardingStage, models.Result) {
	return fetchContent(ctx, c, "OnboardingStages", c.adapter.OnboardingStages, defaultOnboardingStages, app.MsgStagesFailed)
}

// OnboardingGoals implements [ClientContentService].
func (c *clientContentService) OnboardingGoals(ctx context.Context) ([]models.Goal, models.Result) {
	return fetchContent(ctx, c, "OnboardingGoals", c.adapter.OnboardingGoals, defaultGoals, app.MsgGoalsFailed)
}

// OnboardingAllergies implements [ClientContentService].
func (c *clientContentService) OnboardingAllergies(ctx context.Context) ([]models.Allergy, models.Result) {
	return fetchContent(ctx, c, "OnboardingAllergies", c.adapter.OnboardingAllergies, nil, app.MsgAllergiesFailed)
}

// fetchContent calls fetch with the stored token. On 401 it refreshes the
// session once and repeats the call once. Any failure returns a copy of
// fallback.
func fetchContent[T any](
	ctx context.Context,
	c *clientContentService,
	op string,
	fetch func(ctx context.Context, token string) ([]T, error),
	fallback []T,
	generic string,
) ([]T, models.Result) {
	token := c.session.Token()
	if token == "" {
		return clone(fallback), localFailure(ErrNotAuthenticated, app.MsgNotAuthenticated)
	}
	if c.connectivity != nil && !c.connectivity.Online() {
		return clone(fallback), localFailure(fmt.Errorf("%w: %w", ErrNetwork, ErrOfflineUnavailable), app.MsgOffline)
	}

	items, err := fetch(ctx, token)
	if errors.Is(err, adapter.ErrUnauthorized) {
		c.logger.Debug().Str("func", "clientContentService."+op).Msg("token rejected, refreshing")
		if refreshed := c.auth.Refresh(ctx); refreshed.OK() {
			items, err = fetch(ctx, c.session.Token())
		}
	}
	if err != nil {
		r := classify(err, generic, generic)
		c.logger.Warn().Str("func", "clientContentService."+op).Int("status", r.StatusCode).Err(r.Err).
			Msg("content unavailable, using defaults")
		return clone(fallback), r
	}

	return items, success(nil, "")
}

func clone[T any](items []T) []T {
	if items == nil {
		return nil
	}
	return append([]T(nil), items...)
}
