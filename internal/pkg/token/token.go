package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"
)

// Expiry windows for the two one-time secrets.
const (
	VerificationTTL = time.Hour
	ResetTTL        = 30 * time.Minute
)

// NewVerificationCode generates a 6-digit numeric code in [100000, 999999],
// emailed to the user and typed back to confirm ownership.
func NewVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// NewResetToken generates a cryptographically random 20-character hex token
// embedded in the password-reset URL.
func NewResetToken() (string, error) {
	b := make([]byte, 10)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
