package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CodedSedorf/mern-auth/internal/domain"
	"github.com/CodedSedorf/mern-auth/internal/infrastructure/smtp"
	"github.com/CodedSedorf/mern-auth/internal/pkg/id"
	"github.com/CodedSedorf/mern-auth/internal/pkg/otp"
	"github.com/CodedSedorf/mern-auth/internal/pkg/password"
)

const (
	verifyOTPTTL = 24 * time.Hour
	resetOTPTTL  = 15 * time.Minute
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldPasswordHash       = "password_hash"
	fieldIsVerified         = "is_verified"
	fieldVerifyOTP          = "verify_otp"
	fieldVerifyOTPExpiresAt = "verify_otp_expires_at"
	fieldResetOTP           = "reset_otp"
	fieldResetOTPExpiresAt  = "reset_otp_expires_at"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Service interface {
	// Register creates the account and issues a session token. The token may
	// be returned alongside a non-nil error when the account was persisted
	// but the welcome email failed: the session is already established and
	// only the notification is lost.
	Register(ctx context.Context, req RegisterRequest) (token string, err error)
	Login(ctx context.Context, req LoginRequest) (token string, err error)
	SendVerifyOTP(ctx context.Context, userID string) error
	VerifyEmail(ctx context.Context, userID, code string) error
	SendResetOTP(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
	Profile(ctx context.Context, userID string) (*domain.User, error)
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
}

type tokenSigner interface {
	Sign(userID string) (string, error)
}

type service struct {
	repo   userStore
	mailer smtp.Mailer
	tokens tokenSigner
}

type ServiceDeps struct {
	UserRepo userStore
	Mailer   smtp.Mailer
	Tokens   tokenSigner
}

func NewService(deps ServiceDeps) Service {
	return &service{repo: deps.UserRepo, mailer: deps.Mailer, tokens: deps.Tokens}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (string, error) {
	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return "", domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return "", err
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()
	u := &domain.User{
		UserID:       id.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Put(ctx, u); err != nil {
		return "", err
	}

	token, err := s.tokens.Sign(u.UserID)
	if err != nil {
		return "", err
	}

	body := fmt.Sprintf("Welcome to Techie website. Your account has been created with email id: %s", u.Email)
	if err := s.mailer.SendEmail(u.Email, "Welcome to Techie", body); err != nil {
		// Account and session already exist; only the notification is lost.
		return token, err
	}
	return token, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (string, error) {
	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidEmail
		}
		return "", err
	}
	if !password.Verify(req.Password, u.PasswordHash) {
		return "", domain.ErrInvalidPassword
	}
	return s.tokens.Sign(u.UserID)
}

func (s *service) SendVerifyOTP(ctx context.Context, userID string) error {
	u, err := s.repo.Get(ctx, userID)
	if err != nil {
		return err
	}
	if u.IsVerified {
		return domain.ErrAlreadyVerified
	}

	code, err := otp.Generate()
	if err != nil {
		return err
	}
	updates := map[string]interface{}{
		fieldVerifyOTP:          code,
		fieldVerifyOTPExpiresAt: time.Now().Add(verifyOTPTTL).UnixMilli(),
	}
	if err := s.repo.Update(ctx, userID, updates); err != nil {
		return err
	}

	body := fmt.Sprintf("Your OTP is %s. Verify your account using this OTP", code)
	return s.mailer.SendEmail(u.Email, "Verify your account as techie member", body)
}

func (s *service) VerifyEmail(ctx context.Context, userID, code string) error {
	u, err := s.repo.Get(ctx, userID)
	if err != nil {
		return err
	}
	if u.VerifyOTP == "" || u.VerifyOTP != code {
		return domain.ErrInvalidOTP
	}
	if u.VerifyOTPExpiresAt <= time.Now().UnixMilli() {
		return domain.ErrOTPExpired
	}
	return s.repo.Update(ctx, userID, map[string]interface{}{
		fieldIsVerified:         true,
		fieldVerifyOTP:          "",
		fieldVerifyOTPExpiresAt: int64(0),
	})
}

func (s *service) SendResetOTP(ctx context.Context, email string) error {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	code, err := otp.Generate()
	if err != nil {
		return err
	}
	updates := map[string]interface{}{
		fieldResetOTP:          code,
		fieldResetOTPExpiresAt: time.Now().Add(resetOTPTTL).UnixMilli(),
	}
	if err := s.repo.Update(ctx, u.UserID, updates); err != nil {
		return err
	}

	body := fmt.Sprintf("Your OTP for resetting your password is %s. Use this OTP to proceed with resetting your password.", code)
	return s.mailer.SendEmail(u.Email, "Password Reset OTP", body)
}

func (s *service) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	if u.ResetOTP == "" || u.ResetOTP != code {
		return domain.ErrInvalidOTP
	}
	if u.ResetOTPExpiresAt <= time.Now().UnixMilli() {
		return domain.ErrOTPExpired
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, u.UserID, map[string]interface{}{
		fieldPasswordHash:      hash,
		fieldResetOTP:          "",
		fieldResetOTPExpiresAt: int64(0),
	})
}

func (s *service) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.Get(ctx, userID)
}
