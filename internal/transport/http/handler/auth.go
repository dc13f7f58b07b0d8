package handler

import (
	"encoding/json"
	"net/http"

	"github.com/CodedSedorf/mern-auth/internal/application/auth"
	"github.com/CodedSedorf/mern-auth/internal/domain"
	"github.com/CodedSedorf/mern-auth/internal/pkg/validate"
	"github.com/CodedSedorf/mern-auth/internal/transport/http/middleware"
)

// AuthHandler handles registration, login, logout and verification endpoints.
type AuthHandler struct {
	svc     auth.Service
	cookies CookieSettings
}

func NewAuthHandler(svc auth.Service, cookies CookieSettings) *AuthHandler {
	return &AuthHandler{svc: svc, cookies: cookies}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, domain.ErrMissingDetails)
		return
	}
	if err := validate.Struct(req); err != nil {
		fail(w, domain.ErrMissingDetails)
		return
	}
	token, err := h.svc.Register(r.Context(), req)
	// The session cookie is attached as soon as a token exists, before the
	// welcome notification outcome is known.
	if token != "" {
		h.cookies.set(w, token)
	}
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, domain.ErrCredentialsRequired)
		return
	}
	if err := validate.Struct(req); err != nil {
		fail(w, domain.ErrCredentialsRequired)
		return
	}
	token, err := h.svc.Login(r.Context(), req)
	if err != nil {
		fail(w, err)
		return
	}
	h.cookies.set(w, token)
	writeJSON(w, http.StatusOK, Envelope{Success: true})
}

// Logout clears the session cookie. There is no server-side token
// revocation; a previously issued token stays valid until it expires.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.cookies.clear(w)
	ok(w, "Logged Out")
}

func (h *AuthHandler) SendVerifyOTP(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID string `json:"userId"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	userID := h.resolveUserID(r)
	if userID == "" {
		userID = body.UserID
	}
	if userID == "" {
		fail(w, domain.ErrNotAuthorized)
		return
	}
	if err := h.svc.SendVerifyOTP(r.Context(), userID); err != nil {
		fail(w, err)
		return
	}
	ok(w, "Verification OTP sent to the email.")
}

func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID string `json:"userId"`
		OTP    string `json:"otp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		fail(w, domain.ErrOTPDetailsRequired)
		return
	}
	userID := h.resolveUserID(r)
	if userID == "" {
		userID = body.UserID
	}
	if userID == "" || body.OTP == "" {
		fail(w, domain.ErrOTPDetailsRequired)
		return
	}
	if err := h.svc.VerifyEmail(r.Context(), userID, body.OTP); err != nil {
		fail(w, err)
		return
	}
	ok(w, "Email verified successfully")
}

// IsAuthenticated reports whether the request carries a valid session; the
// auth middleware has already vetted the cookie by the time this runs.
func (h *AuthHandler) IsAuthenticated(w http.ResponseWriter, r *http.Request) {
	if _, found := middleware.UserIDFromContext(r.Context()); !found {
		fail(w, domain.ErrNotAuthorized)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true})
}

func (h *AuthHandler) SendResetOTP(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" {
		fail(w, domain.ErrEmailRequired)
		return
	}
	if err := h.svc.SendResetOTP(r.Context(), body.Email); err != nil {
		fail(w, err)
		return
	}
	ok(w, "OTP sent to your email")
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email       string `json:"email"`
		OTP         string `json:"otp"`
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		fail(w, domain.ErrResetDetailsRequired)
		return
	}
	if body.Email == "" || body.OTP == "" || body.NewPassword == "" {
		fail(w, domain.ErrResetDetailsRequired)
		return
	}
	if err := h.svc.ResetPassword(r.Context(), body.Email, body.OTP, body.NewPassword); err != nil {
		fail(w, err)
		return
	}
	ok(w, "Password has been reset successfully")
}

// resolveUserID prefers the identity vetted by the auth middleware.
func (h *AuthHandler) resolveUserID(r *http.Request) string {
	if id, found := middleware.UserIDFromContext(r.Context()); found {
		return id
	}
	return ""
}
