package http

import (
	"net/http"

	"github.com/MKhiriev/court-fund/internal/logger"
	"github.com/MKhiriev/court-fund/models"
)

// credentialsHandler decodes the login/password body, runs authenticate and
// answers with a fresh bearer token in the Authorization header.
func (h *Handler) credentialsHandler(action string, authenticate func(*http.Request, models.User) (models.User, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds models.User
		if err := decodeJSON(r, &creds); err != nil {
			writeError(w, r, err, "invalid JSON was passed")
			return
		}

		user, err := authenticate(r, creds)
		if err != nil {
			writeError(w, r, err, "user "+action+" failed")
			return
		}

		logger.FromRequest(r).Info().
			Int64("user_id", user.UserID).
			Str("role", string(user.Role)).
			Msgf("user %s succeeded", action)

		token, err := h.services.AuthService.CreateToken(r.Context(), user)
		if err != nil {
			writeError(w, r, err, "creation of token failed")
			return
		}

		w.Header().Set("Authorization", "Bearer "+token.SignedString)
		w.WriteHeader(http.StatusOK)
	}
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	h.credentialsHandler("registration", func(r *http.Request, u models.User) (models.User, error) {
		return h.services.AuthService.RegisterUser(r.Context(), u)
	})(w, r)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	h.credentialsHandler("login", func(r *http.Request, u models.User) (models.User, error) {
		return h.services.AuthService.Login(r.Context(), u)
	})(w, r)
}
