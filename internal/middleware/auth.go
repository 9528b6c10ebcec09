package middleware

import (
	"net/http"

	"github.com/thisistony/aucklandeats-meetup/internal/session"
	"github.com/wb-go/wbf/ginext"
)

const identityKey = "identity"

// Auth rejects requests without a valid session cookie and stores the
// caller's identity on the context for handlers.
func Auth(sessions *session.Manager) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		ident, ok := sessions.Current(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "Unauthorized"})
			return
		}

		c.Set(identityKey, ident)
		c.Next()
	}
}

// IdentityFrom returns the identity stored by Auth.
func IdentityFrom(c *ginext.Context) (session.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return session.Identity{}, false
	}

	ident, ok := v.(session.Identity)
	return ident, ok
}
