package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-auth-nosql/internal/domain"
	"github.com/go-auth-nosql/internal/infrastructure/smtp"
	"github.com/go-auth-nosql/internal/pkg/id"
	"github.com/go-auth-nosql/internal/pkg/password"
	pkgtoken "github.com/go-auth-nosql/internal/pkg/token"
	"github.com/go-auth-nosql/internal/pkg/validate"
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldLastLogin      = "last_login"
	fieldResetToken     = "reset_password_token"
	fieldResetExpiresAt = "reset_expires_at"
)

// Client-facing errors. Wrong and expired secrets share one message so the
// response never reveals which, and login failures are byte-identical for
// unknown emails and wrong passwords to prevent account enumeration.
var (
	errInvalidCode        = domain.E(domain.ErrUnauthorized, "Invalid or expired verification code")
	errInvalidResetToken  = domain.E(domain.ErrUnauthorized, "Invalid or expired reset token")
	errInvalidCredentials = domain.E(domain.ErrUnauthorized, "Invalid credentials")
	errUserExists         = domain.E(domain.ErrConflict, "User already exists")
	errUserNotFound       = domain.E(domain.ErrNotFound, "User not found")
)

// Service is the authentication state machine. Accounts move
// Unverified -> Verified exactly once; a reset-pending flag toggles
// orthogonally via forgot/reset-password.
type Service interface {
	Signup(ctx context.Context, req domain.SignupRequest) (*domain.User, error)
	VerifyEmail(ctx context.Context, code string) (*domain.User, error)
	Login(ctx context.Context, req domain.LoginRequest) (*domain.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	CheckAuth(ctx context.Context, userID string) (*domain.User, error)
}

type userStore interface {
	Put(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByVerificationToken(ctx context.Context, code string) (*domain.User, error)
	GetByResetToken(ctx context.Context, token string) (*domain.User, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
	ConsumeVerification(ctx context.Context, userID, code string) error
	ConsumeReset(ctx context.Context, userID, token, newHash string) error
}

type service struct {
	repo      userStore
	mailer    smtp.Mailer
	clientURL string
}

type ServiceDeps struct {
	UserRepo  userStore
	Mailer    smtp.Mailer
	ClientURL string
}

func NewService(deps ServiceDeps) Service {
	return &service{
		repo:      deps.UserRepo,
		mailer:    deps.Mailer,
		clientURL: strings.TrimRight(deps.ClientURL, "/"),
	}
}

func (s *service) Signup(ctx context.Context, req domain.SignupRequest) (*domain.User, error) {
	if errs := validate.Signup(req.Name, req.Email, req.Password); len(errs) > 0 {
		return nil, &domain.ValidationError{Fields: errs}
	}
	switch _, err := s.repo.GetByEmail(ctx, req.Email); {
	case err == nil:
		return nil, errUserExists
	case !errors.Is(err, domain.ErrNotFound):
		// A failed lookup is not an available email; surface the store error.
		return nil, err
	}
	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	code, err := pkgtoken.NewVerificationCode()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	u := &domain.User{
		UserID:                id.New(),
		Name:                  strings.TrimSpace(req.Name),
		Email:                 req.Email,
		PasswordHash:          hash,
		VerificationToken:     code,
		VerificationExpiresAt: now.Add(pkgtoken.VerificationTTL).Unix(),
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := s.repo.Put(ctx, u); err != nil {
		return nil, err
	}
	// Best-effort: a failed send must not roll back the created account.
	s.sendAsync("verification", func() error {
		return s.mailer.SendVerificationEmail(u.Email, code)
	})
	return u, nil
}

func (s *service) VerifyEmail(ctx context.Context, code string) (*domain.User, error) {
	if code == "" {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "code", Message: "Verification code is required."},
		}}
	}
	u, err := s.repo.GetByVerificationToken(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errInvalidCode
		}
		return nil, err
	}
	if u.VerificationExpiresAt <= time.Now().Unix() {
		return nil, errInvalidCode
	}
	// Conditional consume: a concurrent verify or an expiry between the read
	// above and this write fails the condition instead of double-applying.
	if err := s.repo.ConsumeVerification(ctx, u.UserID, code); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, errInvalidCode
		}
		return nil, err
	}
	u.IsVerified = true
	u.VerificationToken = ""
	u.VerificationExpiresAt = 0
	s.sendAsync("welcome", func() error {
		return s.mailer.SendWelcomeEmail(u.Email, u.Name)
	})
	return u, nil
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*domain.User, error) {
	var fields []domain.FieldError
	if req.Email == "" {
		fields = append(fields, domain.FieldError{Field: "email", Message: "Email is required."})
	}
	if req.Password == "" {
		fields = append(fields, domain.FieldError{Field: "password", Message: "Password is required."})
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}
	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}
	if !password.Verify(req.Password, u.PasswordHash) {
		return nil, errInvalidCredentials
	}
	now := time.Now().UTC()
	if err := s.repo.Update(ctx, u.UserID, map[string]interface{}{fieldLastLogin: now}); err != nil {
		return nil, err
	}
	u.LastLogin = &now
	return u, nil
}

func (s *service) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "email", Message: "Email is required."},
		}}
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errUserNotFound
		}
		return err
	}
	token, err := pkgtoken.NewResetToken()
	if err != nil {
		return err
	}
	// A new request overwrites any prior pending token.
	updates := map[string]interface{}{
		fieldResetToken:     token,
		fieldResetExpiresAt: time.Now().Add(pkgtoken.ResetTTL).Unix(),
	}
	if err := s.repo.Update(ctx, u.UserID, updates); err != nil {
		return err
	}
	// Unlike the other notifications this send blocks: without the email the
	// user has no way to complete the flow, so failure fails the request.
	resetURL := fmt.Sprintf("%s/reset-password/%s", s.clientURL, token)
	return s.mailer.SendPasswordResetEmail(u.Email, resetURL)
}

func (s *service) ResetPassword(ctx context.Context, token, newPassword string) error {
	var fields []domain.FieldError
	if token == "" {
		fields = append(fields, domain.FieldError{Field: "token", Message: "Reset token is required."})
	}
	if newPassword == "" {
		fields = append(fields, domain.FieldError{Field: "password", Message: "Password is required."})
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	if !password.IsValid(newPassword) {
		return domain.E(domain.ErrBadRequest, password.PolicyMessage)
	}
	u, err := s.repo.GetByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errInvalidResetToken
		}
		return err
	}
	if u.ResetExpiresAt <= time.Now().Unix() {
		return errInvalidResetToken
	}
	hash, err := password.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.repo.ConsumeReset(ctx, u.UserID, token, hash); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return errInvalidResetToken
		}
		return err
	}
	s.sendAsync("reset-success", func() error {
		return s.mailer.SendResetSuccessEmail(u.Email)
	})
	return nil
}

func (s *service) CheckAuth(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *service) sendAsync(kind string, send func() error) {
	go func() {
		if err := send(); err != nil {
			slog.Warn("failed to send notification email", "kind", kind, "err", err)
		}
	}()
}
