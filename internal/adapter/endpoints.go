package adapter

// API paths relative to <base>/<version>.
const (
	pathLogin          = "/auth/login"
	pathLogout         = "/auth/logout"
	pathRefresh        = "/auth/refresh"
	pathRegister       = "/auth/register-client"
	pathChangePassword = "/auth/change-password"
	pathResetPassword  = "/auth/reset-password"
	pathProfile        = "/user/profile"
	pathWelcomeCards   = "/welcome/cards"
	pathStages         = "/onboarding/stages"
	pathGoals          = "/onboarding/goals"
	pathAllergies      = "/onboarding/allergies"
)

// pathHealth is resolved against the API origin, not the versioned root.
const pathHealth = "/health"
