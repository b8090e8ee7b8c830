// Package session is the cookie-backed credential store behind the login
// flow. It holds the upstream access token and identity for a fixed lifetime
// with no refresh or rotation; an expired or revoked token is only discovered
// when a forwarded upstream call fails.
package session

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sellora/pos-gateway/internal/domain/entity"
	"github.com/sellora/pos-gateway/internal/domain/enum"
)

// Cookie names match the upstream-facing front-end this gateway replaces.
const (
	cookieAccessToken = "accessToken"
	cookieUserID      = "userId"
	cookieUsername    = "username"
	cookieRole        = "role"
	cookieIsActive    = "isActive"
)

// Store reads and writes the session cookies on a request. All methods are
// local-only; nothing here talks to the upstream.
type Store struct {
	ttl    time.Duration
	secure bool
}

// NewStore creates a session store. ttl bounds every cookie it writes
// (7 days in the stock configuration).
func NewStore(ttl time.Duration, secure bool) *Store {
	return &Store{ttl: ttl, secure: secure}
}

// Set persists the session across its cookie set.
func (s *Store) Set(c *gin.Context, sess *entity.Session) {
	maxAge := int(s.ttl.Seconds())
	s.write(c, cookieAccessToken, sess.AccessToken, maxAge)
	s.write(c, cookieUserID, strconv.FormatInt(sess.UserID, 10), maxAge)
	s.write(c, cookieUsername, sess.Username, maxAge)
	s.write(c, cookieRole, string(sess.Role), maxAge)
	s.write(c, cookieIsActive, strconv.FormatBool(sess.IsActive), maxAge)
}

// Get reassembles the session from cookies. Returns false when no access
// token is present; partial cookie sets degrade to zero values rather than
// failing, matching the tolerance of the original client.
func (s *Store) Get(c *gin.Context) (*entity.Session, bool) {
	token, err := c.Cookie(cookieAccessToken)
	if err != nil || token == "" {
		return nil, false
	}

	sess := &entity.Session{AccessToken: token}
	if v, err := c.Cookie(cookieUserID); err == nil {
		sess.UserID, _ = strconv.ParseInt(v, 10, 64)
	}
	if v, err := c.Cookie(cookieUsername); err == nil {
		sess.Username = v
	}
	if v, err := c.Cookie(cookieRole); err == nil {
		sess.Role = enum.Role(v)
	}
	if v, err := c.Cookie(cookieIsActive); err == nil {
		sess.IsActive, _ = strconv.ParseBool(v)
	}
	return sess, true
}

// Role reads the persisted role without any network access. Empty when no
// session is stored.
func (s *Store) Role(c *gin.Context) enum.Role {
	v, err := c.Cookie(cookieRole)
	if err != nil {
		return ""
	}
	return enum.Role(v)
}

// AccessToken reads the persisted token without any network access.
func (s *Store) AccessToken(c *gin.Context) string {
	v, err := c.Cookie(cookieAccessToken)
	if err != nil {
		return ""
	}
	return v
}

// Clear removes every session cookie. Logout must go through here; leaving
// credentials behind on logout was a defect in the original client.
func (s *Store) Clear(c *gin.Context) {
	for _, name := range []string{cookieAccessToken, cookieUserID, cookieUsername, cookieRole, cookieIsActive} {
		s.write(c, name, "", -1)
	}
}

func (s *Store) write(c *gin.Context, name, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   s.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
