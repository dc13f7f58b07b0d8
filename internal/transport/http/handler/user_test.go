package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CodedSedorf/mern-auth/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfile_ReturnsSafeFields(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("Profile", mock.Anything, "u1").Return(&domain.User{
		UserID:       "u1",
		Name:         "Ann",
		Email:        "ann@x.com",
		PasswordHash: "$2a$10$secret",
		IsVerified:   true,
	}, nil)

	h := NewUserHandler(svc)
	req := withUserID(httptest.NewRequest(http.MethodGet, "/", nil), "u1")
	rr := httptest.NewRecorder()
	h.Profile(rr, req)

	var env ProfileEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.True(t, env.Success)
	require.NotNil(t, env.User)
	assert.Equal(t, "Ann", env.User.Name)
	assert.Equal(t, "ann@x.com", env.User.Email)
	assert.True(t, env.User.IsVerified)
	assert.NotContains(t, rr.Body.String(), "$2a$10$secret")
}

func TestProfile_NoSession(t *testing.T) {
	svc := &mockAuthSvc{}
	h := NewUserHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.Profile(rr, req)

	env := decodeEnvelope(t, rr)
	assert.False(t, env.Success)
	assert.Equal(t, "Not Authorized. Login Again", env.Message)
	svc.AssertNotCalled(t, "Profile", mock.Anything, mock.Anything)
}

func TestProfile_UnknownUser(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("Profile", mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	h := NewUserHandler(svc)
	req := withUserID(httptest.NewRequest(http.MethodGet, "/", nil), "missing")
	rr := httptest.NewRecorder()
	h.Profile(rr, req)

	env := decodeEnvelope(t, rr)
	assert.False(t, env.Success)
	assert.Equal(t, "User not found", env.Message)
}
