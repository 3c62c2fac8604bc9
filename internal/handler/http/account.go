package http

import (
	"net/http"

	"github.com/MKhiriev/go-post-gateway/internal/utils"
	"github.com/MKhiriev/go-post-gateway/models"
)

// getAccount returns the caller's own account, email included.
func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: user}, http.StatusOK)
}

func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.AccountUpdate
	avatar, err := h.bindRequest(w, r, &update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateAccount(r.Context(), identity, update, avatar)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{Message: okMessage, User: user}, http.StatusOK)
}
