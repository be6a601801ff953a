package stubapi

import (
	"net/http"

	"github.com/MKhiriev/fitiplus/internal/logger"
	"github.com/MKhiriev/fitiplus/internal/utils"
)

// auth rejects requests without a valid, unrevoked bearer token with 401 and
// the "session expired" message, which is what the client reacts to by
// refreshing. The token subject is stored with [utils.WithSubject].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteMessage(w, msgSessionExpired, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(ErrInvalidAuthorizationHeader).Send()
			utils.WriteMessage(w, msgSessionExpired, http.StatusUnauthorized)
			return
		}

		if h.users.isRevoked(tokenString) {
			log.Err(ErrTokenRevoked).Send()
			utils.WriteMessage(w, msgSessionExpired, http.StatusUnauthorized)
			return
		}

		subject, err := utils.ValidateAndParseJWTToken(tokenString, h.cfg.SignKey, TokenIssuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteMessage(w, msgSessionExpired, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSubject(r.Context(), subject)))
	})
}
