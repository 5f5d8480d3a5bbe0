package password

import "golang.org/x/crypto/bcrypt"

// MinLength is the minimum accepted password length.
const MinLength = 6

// PolicyMessage is the client-facing description of the full password policy.
const PolicyMessage = "Password must be at least 6 characters long and contain at least one letter, one number, and one special character."

// IsValid reports whether candidate satisfies the password policy:
// length >= MinLength, at least one letter, one digit, and one special
// character from @$!%*?&, with no characters outside those classes.
// Go's regexp has no lookahead, so this is a single rune scan.
func IsValid(candidate string) bool {
	if len(candidate) < MinLength {
		return false
	}
	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range candidate {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case r == '@' || r == '$' || r == '!' || r == '%' || r == '*' || r == '?' || r == '&':
			hasSpecial = true
		default:
			return false
		}
	}
	return hasLetter && hasDigit && hasSpecial
}

// Hash returns the bcrypt hash of plaintext at the default cost (10).
func Hash(plaintext string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plaintext matches hash. bcrypt's comparison is
// constant-time with respect to the hash.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
