package http

import (
	"net/http"

	"github.com/MKhiriev/go-post-gateway/internal/logger"
	"github.com/MKhiriev/go-post-gateway/internal/utils"
	"github.com/MKhiriev/go-post-gateway/models"
)

// createToken exchanges an email and password for a signed token.
func (h *Handler) createToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if _, err := h.bindRequest(w, r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		log.Warn().Err(err).Msg("login failed")
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", user.UserID).Msg("token issued")
	utils.WriteJSON(w, models.TokenResponse{Token: token.String(), Message: okMessage}, http.StatusCreated)
}
