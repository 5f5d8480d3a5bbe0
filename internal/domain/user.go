package domain

import "time"

// User is the persisted account record. Verification and reset fields are
// optional and present only while the corresponding flow is pending; a new
// request overwrites any prior secret, so at most one of each exists.
type User struct {
	UserID       string `json:"id" dynamodbav:"user_id"`
	Name         string `json:"name" dynamodbav:"name"`
	Email        string `json:"email" dynamodbav:"email"`
	PasswordHash string `json:"-" dynamodbav:"password_hash"`
	IsVerified   bool   `json:"is_verified" dynamodbav:"is_verified"`

	VerificationToken     string `json:"-" dynamodbav:"verification_token,omitempty"`
	VerificationExpiresAt int64  `json:"-" dynamodbav:"verification_expires_at,omitempty"`

	ResetPasswordToken string `json:"-" dynamodbav:"reset_password_token,omitempty"`
	ResetExpiresAt     int64  `json:"-" dynamodbav:"reset_expires_at,omitempty"`

	LastLogin *time.Time `json:"last_login,omitempty" dynamodbav:"last_login"`
	CreatedAt time.Time  `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" dynamodbav:"updated_at"`
}

// PublicUser is the minimal projection returned by signup.
type PublicUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SessionUser is the full client-safe projection returned once a caller is
// (or is about to be) authenticated. It never carries the password hash or
// any pending secret.
type SessionUser struct {
	UserID     string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	IsVerified bool       `json:"is_verified"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Public returns the signup projection of u.
func (u *User) Public() *PublicUser {
	return &PublicUser{Name: u.Name, Email: u.Email}
}

// Session returns the authenticated projection of u.
func (u *User) Session() *SessionUser {
	return &SessionUser{
		UserID:     u.UserID,
		Name:       u.Name,
		Email:      u.Email,
		IsVerified: u.IsVerified,
		LastLogin:  u.LastLogin,
		CreatedAt:  u.CreatedAt,
	}
}

// SignupRequest is the inbound signup payload.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the inbound login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
