package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"
)

// Identity is what the signed session token carries. The server keeps no
// session state: the cookie is the session.
type Identity struct {
	UserID   string
	Username string
}

type Manager struct {
	secret     []byte
	cookieName string
	ttl        time.Duration
	secure     bool
}

func NewManager(secret, cookieName string, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		secret:     []byte(secret),
		cookieName: cookieName,
		ttl:        ttl,
		secure:     secure,
	}
}

func (m *Manager) CookieName() string {
	return m.cookieName
}

// Token signs the identity into a compact HS256 JWT.
func (m *Manager) Token(ident Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      ident.UserID,
		"username": ident.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Issue writes the session cookie on the response.
func (m *Manager) Issue(c *ginext.Context, ident Identity) error {
	signed, err := m.Token(ident)
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, signed, int(m.ttl.Seconds()), "/", "", m.secure, true)

	return nil
}

// Clear expires the session cookie.
func (m *Manager) Clear(c *ginext.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, "", -1, "/", "", m.secure, true)
}

// Current reads and validates the session cookie. A missing, malformed or
// expired token yields no identity, never an error: an invalid session is
// simply an anonymous request.
func (m *Manager) Current(c *ginext.Context) (Identity, bool) {
	raw, err := c.Cookie(m.cookieName)
	if err != nil || raw == "" {
		return Identity{}, false
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, false
	}

	userID, _ := claims["sub"].(string)
	username, _ := claims["username"].(string)
	if userID == "" || username == "" {
		return Identity{}, false
	}

	return Identity{UserID: userID, Username: username}, true
}
