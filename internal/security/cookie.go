package security

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ilyahahaha/vneshtata-new/internal/models"
)

// SessionStore manages the session cookie lifecycle: issued on
// login/register, replaced after identity-affecting mutations, cleared
// on logout.
type SessionStore struct {
	secret     string
	ttl        time.Duration
	cookieName string
	secure     bool
}

func NewSessionStore(secret string, ttl time.Duration, cookieName string, secure bool) *SessionStore {
	return &SessionStore{
		secret:     secret,
		ttl:        ttl,
		cookieName: cookieName,
		secure:     secure,
	}
}

func (s *SessionStore) Issue(c *gin.Context, user models.SessionUser) error {
	sealed, err := SealSession(s.secret, user, s.ttl)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, sealed, int(s.ttl.Seconds()), "/", "", s.secure, true)
	return nil
}

// Read returns the empty session when the cookie is absent, malformed
// or fails verification. It never errors.
func (s *SessionStore) Read(c *gin.Context) models.SessionUser {
	sealed, err := c.Cookie(s.cookieName)
	if err != nil {
		return models.EmptySession
	}

	user, err := OpenSession(s.secret, sealed)
	if err != nil {
		return models.EmptySession
	}
	return user
}

func (s *SessionStore) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, "", -1, "/", "", s.secure, true)
}
