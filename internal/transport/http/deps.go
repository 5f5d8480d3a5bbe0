package http

import (
	"context"

	"github.com/go-auth-nosql/internal/domain"
	jwtinfra "github.com/go-auth-nosql/internal/infrastructure/jwt"
	"github.com/go-auth-nosql/internal/infrastructure/smtp"
)

// UserRepository is the persistence surface the router wires into the auth
// service. *dynamo.UserRepo satisfies it.
type UserRepository interface {
	Put(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByVerificationToken(ctx context.Context, code string) (*domain.User, error)
	GetByResetToken(ctx context.Context, token string) (*domain.User, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
	ConsumeVerification(ctx context.Context, userID, code string) error
	ConsumeReset(ctx context.Context, userID, token, newHash string) error
}

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo    UserRepository
	Mailer      smtp.Mailer
	JWTProvider *jwtinfra.Provider
}
