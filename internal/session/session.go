package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// CookieName holds the signed admin session token. The cookie carries
// no Expires so the browser drops it when the session ends.
const CookieName = "adminSession"

const tokenLifetime = 24 * time.Hour

var ErrInvalidSession = errors.New("invalid session")

// Manager issues and verifies the shared admin session token. There
// is a single admin role behind one password; the token only attests
// that the gate was passed.
type Manager struct {
	Secret []byte
}

func NewManager(secret []byte) *Manager {
	return &Manager{Secret: secret}
}

func (m *Manager) Issue() (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.Secret)
}

func (m *Manager) Verify(raw string) error {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return m.Secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return ErrInvalidSession
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["role"] != "admin" {
		return ErrInvalidSession
	}
	return nil
}

// Cookie builds the session-scoped cookie wrapping the token. An
// empty value with MaxAge -1 clears it on logout.
func Cookie(value string) *http.Cookie {
	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
	if value == "" {
		cookie.MaxAge = -1
	}
	return cookie
}

// IsAdmin reports whether the request carries a valid session cookie.
func (m *Manager) IsAdmin(c echo.Context) bool {
	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return false
	}
	return m.Verify(cookie.Value) == nil
}

// RequireAdmin guards the catalog mutation routes.
func (m *Manager) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.IsAdmin(c) {
			return echo.NewHTTPError(http.StatusUnauthorized, "admin session required")
		}
		return next(c)
	}
}
