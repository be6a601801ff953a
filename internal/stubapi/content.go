package stubapi

import (
	"net/http"

	"github.com/MKhiriev/fitiplus/internal/utils"
	"github.com/MKhiriev/fitiplus/models"
)

var welcomeCards = []models.WelcomeCard{
	{ID: "nutrition", Title: "Nutrición personalizada", Description: "Planes de comida adaptados a tus objetivos"},
	{ID: "recipes", Title: "Recetas saludables", Description: "Genera recetas con los ingredientes que tienes"},
	{ID: "progress", Title: "Sigue tu progreso", Description: "Registra tus comidas y mira tu avance"},
}

var onboardingStages = []models.OnboardingStage{
	{Step: 1, Title: "Información Personal", Description: "Cuéntanos sobre ti para personalizar tu experiencia", ContentType: "goals"},
	{Step: 2, Title: "Objetivos Fitness", Description: "Define tus metas y objetivos de salud", ContentType: "physical_data"},
	{Step: 3, Title: "Información de Salud", Description: "Ayúdanos a conocer tu estado de salud", ContentType: "medical_conditions"},
}

var goals = []models.Goal{
	{ID: "lose_weight", Name: "Perder peso", Description: "Ayudarte a alcanzar tu peso ideal de forma saludable"},
	{ID: "maintain", Name: "Mantener peso", Description: "Mantener tu peso actual con una alimentación balanceada"},
	{ID: "gain_muscle", Name: "Ganar músculo", Description: "Desarrollar masa muscular con la nutrición adecuada"},
}

var allergies = []models.Allergy{
	{ID: "gluten", Name: "Gluten"},
	{ID: "lactose", Name: "Lactosa"},
	{ID: "nuts", Name: "Frutos secos"},
	{ID: "shellfish", Name: "Mariscos"},
	{ID: "egg", Name: "Huevo"},
}

func (h *Handler) welcomeCards(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, models.WelcomeCardsResponse{Cards: welcomeCards}, http.StatusOK)
}

func (h *Handler) onboardingStages(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, models.OnboardingStagesResponse{Stages: onboardingStages}, http.StatusOK)
}

func (h *Handler) onboardingGoals(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, models.GoalsResponse{Goals: goals}, http.StatusOK)
}

// Allergies are served as a bare array; other API builds wrap them.
func (h *Handler) onboardingAllergies(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, allergies, http.StatusOK)
}
