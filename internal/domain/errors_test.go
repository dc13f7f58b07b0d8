package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_MessageIsClientFacing(t *testing.T) {
	assert.EqualError(t, ErrUserExists, "User already exist")
	assert.EqualError(t, ErrAlreadyVerified, "Account already verified")
	assert.EqualError(t, ErrOTPExpired, "OTP has expired")
}

func TestError_UnwrapsToCategory(t *testing.T) {
	assert.ErrorIs(t, ErrUserExists, ErrConflict)
	assert.ErrorIs(t, ErrInvalidOTP, ErrUnauthorized)
	assert.ErrorIs(t, ErrUserNotFound, ErrNotFound)
	assert.NotErrorIs(t, ErrUserNotFound, ErrConflict)
}

func TestError_SurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("verify email: %w", ErrInvalidOTP)
	assert.True(t, errors.Is(wrapped, ErrInvalidOTP))
	assert.True(t, errors.Is(wrapped, ErrUnauthorized))
}
