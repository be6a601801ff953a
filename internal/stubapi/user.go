package stubapi

import (
	"net/http"

	"github.com/MKhiriev/fitiplus/internal/utils"
	"github.com/MKhiriev/fitiplus/models"
)

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetSubjectFromContext(r.Context())

	identity, err := h.users.get(userID)
	if err != nil {
		utils.WriteMessage(w, msgSessionExpired, http.StatusUnauthorized)
		return
	}
	_, _ = utils.WriteJSON(w, models.ProfileResponse{User: &identity}, http.StatusOK)
}
