package domain

import "time"

// User is the persisted account record. OTP state lives directly on the
// record; expiry timestamps are unix milliseconds and zero when no code is
// active.
type User struct {
	UserID             string    `json:"id" dynamodbav:"user_id"`
	Name               string    `json:"name" dynamodbav:"name"`
	Email              string    `json:"email" dynamodbav:"email"`
	PasswordHash       string    `json:"-" dynamodbav:"password_hash"`
	IsVerified         bool      `json:"is_verified" dynamodbav:"is_verified"`
	VerifyOTP          string    `json:"-" dynamodbav:"verify_otp"`
	VerifyOTPExpiresAt int64     `json:"-" dynamodbav:"verify_otp_expires_at"`
	ResetOTP           string    `json:"-" dynamodbav:"reset_otp"`
	ResetOTPExpiresAt  int64     `json:"-" dynamodbav:"reset_otp_expires_at"`
	CreatedAt          time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt          time.Time `json:"updated" dynamodbav:"updated_at"`
}

// Profile is the client-safe projection of a User.
type Profile struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsVerified bool   `json:"isAccountVerified"`
}

func (u *User) Profile() Profile {
	return Profile{Name: u.Name, Email: u.Email, IsVerified: u.IsVerified}
}
