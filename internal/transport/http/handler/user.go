package handler

import (
	"net/http"

	"github.com/CodedSedorf/mern-auth/internal/application/auth"
	"github.com/CodedSedorf/mern-auth/internal/domain"
	"github.com/CodedSedorf/mern-auth/internal/transport/http/middleware"
)

// UserHandler handles account profile endpoints.
type UserHandler struct {
	svc auth.Service
}

func NewUserHandler(svc auth.Service) *UserHandler { return &UserHandler{svc: svc} }

func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, found := middleware.UserIDFromContext(r.Context())
	if !found {
		fail(w, domain.ErrNotAuthorized)
		return
	}
	u, err := h.svc.Profile(r.Context(), userID)
	if err != nil {
		fail(w, err)
		return
	}
	profile := u.Profile()
	writeJSON(w, http.StatusOK, ProfileEnvelope{Success: true, User: &profile})
}
