package stubapi

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/fitiplus/internal/logger"
	"github.com/MKhiriev/fitiplus/internal/utils"
	"github.com/MKhiriev/fitiplus/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	identity, onboarded, err := h.users.authenticate(req.Email, req.Password)
	if err != nil {
		log.Info().Err(err).Msg("login rejected")
		utils.WriteMessage(w, msgInvalidCredentials, http.StatusUnauthorized)
		return
	}

	resp, err := h.authResponse(identity, msgLoginSucceeded)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}
	resp.IsOnboardingCompleted = onboarded

	log.Debug().Str("user_id", identity.ID).Msg("user successfully logged in")
	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	identity, err := h.users.register(req)
	if err != nil {
		switch {
		case errors.Is(err, ErrIncompleteFields):
			utils.WriteMessage(w, msgMissingFields, http.StatusBadRequest)
		case errors.Is(err, ErrEmailTaken):
			utils.WriteMessage(w, msgEmailTaken, http.StatusConflict)
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
		}
		return
	}

	resp, err := h.authResponse(identity, msgRegisterSucceeded)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}
	_, _ = utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RefreshRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	userID, err := h.users.rotateRefresh(req.RefreshToken)
	if err != nil {
		log.Info().Err(err).Msg("refresh rejected")
		utils.WriteMessage(w, msgSessionExpired, http.StatusUnauthorized)
		return
	}
	identity, err := h.users.get(userID)
	if err != nil {
		utils.WriteMessage(w, msgSessionExpired, http.StatusUnauthorized)
		return
	}

	resp, err := h.authResponse(identity, "")
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}
	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	var req models.LogoutRequest
	// the body is optional
	_ = utils.ReadJSON(r, &req)

	token, _ := utils.ParseBearerToken(r.Header.Get("Authorization"))
	h.users.revoke(token, req.RefreshToken)

	_, _ = utils.WriteJSON(w, models.MessageResponse{Success: true, Message: msgLoggedOut}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, _ := utils.GetSubjectFromContext(r.Context())

	var req models.ChangePasswordRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}
	if len([]rune(req.NewPassword)) < minPasswordLength {
		utils.WriteMessage(w, msgPasswordTooShort, http.StatusBadRequest)
		return
	}

	err := h.users.changePassword(userID, req.CurrentPassword, req.NewPassword)
	switch {
	case errors.Is(err, ErrWrongPassword):
		utils.WriteMessage(w, msgWrongPassword, http.StatusBadRequest)
	case errors.Is(err, ErrUserNotFound):
		utils.WriteMessage(w, msgSessionExpired, http.StatusUnauthorized)
	case err != nil:
		log.Err(err).Msg("password change failed")
		utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
	default:
		_, _ = utils.WriteJSON(w, models.MessageResponse{Success: true, Message: msgPasswordChanged}, http.StatusOK)
	}
}

// resetPassword answers the same way whether or not the account exists.
func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordResetRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}
	if normalizeEmail(req.Email) == "" {
		utils.WriteMessage(w, msgEmailRequired, http.StatusBadRequest)
		return
	}

	logger.FromRequest(r).Info().Msg("password reset requested")
	_, _ = utils.WriteJSON(w, models.MessageResponse{Success: true, Message: msgPasswordResetSent}, http.StatusOK)
}

func (h *Handler) authResponse(identity models.Identity, message string) (models.AuthResponse, error) {
	access, err := utils.GenerateJWTToken(TokenIssuer, identity.ID, h.cfg.AccessTokenTTL, h.cfg.SignKey)
	if err != nil {
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{
		User:         &identity,
		AccessToken:  access,
		RefreshToken: h.users.issueRefresh(identity.ID),
		Message:      message,
	}, nil
}
