package session

import (
	"net/http"

	jwtinfra "github.com/go-auth-nosql/internal/infrastructure/jwt"
)

// CookieName is the session cookie set on login and cleared on logout.
const CookieName = "token"

// Manager is the session boundary: it issues and clears the bearer-token
// cookie and authenticates inbound requests by validating it. Sessions are
// stateless; nothing is tracked server-side.
type Manager struct {
	provider *jwtinfra.Provider
	secure   bool
}

// NewManager builds a Manager. secure controls the cookie's Secure flag and
// should be true everywhere except local development.
func NewManager(provider *jwtinfra.Provider, secure bool) *Manager {
	return &Manager{provider: provider, secure: secure}
}

// Issue signs a session token for the account and attaches it as an
// HTTP-only, same-site-strict cookie whose MaxAge matches the token expiry.
func (m *Manager) Issue(w http.ResponseWriter, userID string) error {
	token, err := m.provider.Sign(userID)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.provider.Expiry().Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
	return nil
}

// Clear removes the session cookie. Idempotent; clearing an absent cookie is
// not an error.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Authenticate verifies the request's session cookie and returns the account
// id it was issued for. Any failure means the request is anonymous; callers
// must not fall back to another identity signal.
func (m *Manager) Authenticate(r *http.Request) (string, error) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return "", err
	}
	claims, err := m.provider.Verify(c.Value)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}
