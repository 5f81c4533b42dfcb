package session

import (
	"context"
	"net/http"

	"storefront/internal/cart"
	"storefront/platform/config"
	"storefront/platform/httpkit"
	"storefront/platform/logger"

	"github.com/gin-gonic/gin"
)

const (
	contextSessionKey = "cartSession"
	contextBinderKey  = "cartSessionBinder"
)

// binder attaches sessions to requests and writes the signed cookie.
type binder struct {
	store  *Store
	issuer *TokenIssuer
	cfg    config.SessionConfig
	log    *logger.Logger
	maxAge int
}

func (b *binder) bind(c *gin.Context, sess *Session) error {
	token, err := b.issuer.Issue(sess.ID)
	if err != nil {
		return err
	}
	c.SetSameSite(b.cfg.GetSessionCookieSameSite())
	c.SetCookie(b.cfg.GetSessionCookieName(), token, b.maxAge, "/", "", b.cfg.GetSessionCookieSecure(), true)

	c.Set(contextSessionKey, sess)
	c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), logger.SessionIDKey, sess.ID))
	return nil
}

// Middleware attaches the visitor's live session from the signed cookie and
// refreshes the cookie. Requests without a live session get none: Ensure
// creates one on the first cart mutation.
func Middleware(store *Store, issuer *TokenIssuer, cfg config.SessionConfig, log *logger.Logger) gin.HandlerFunc {
	b := &binder{
		store:  store,
		issuer: issuer,
		cfg:    cfg,
		log:    log,
		maxAge: int(cfg.GetSessionTTL().Seconds()),
	}

	return func(c *gin.Context) {
		c.Set(contextBinderKey, b)

		if raw, err := c.Cookie(cfg.GetSessionCookieName()); err == nil && raw != "" {
			if id, err := issuer.Parse(raw); err == nil {
				if sess, ok := store.Get(id); ok {
					if err := b.bind(c, sess); err != nil {
						log.Error("failed to sign session token", "error", err)
						abortUnavailable(c)
						return
					}
				}
			}
		}
		c.Next()
	}
}

// FromContext returns the live session attached to the request, if any.
func FromContext(c *gin.Context) (*Session, bool) {
	value, ok := c.Get(contextSessionKey)
	if !ok {
		return nil, false
	}
	sess, ok := value.(*Session)
	return sess, ok && sess != nil
}

// Ensure returns the request's session, creating and storing one when the
// visitor has none. On failure it aborts with 500 and returns nil.
func Ensure(c *gin.Context) *Session {
	if sess, ok := FromContext(c); ok {
		return sess
	}

	value, _ := c.Get(contextBinderKey)
	b, ok := value.(*binder)
	if !ok {
		abortUnavailable(c)
		return nil
	}

	sess := b.store.Create()
	if err := b.bind(c, sess); err != nil {
		b.store.Delete(sess.ID)
		b.log.Error("failed to sign session token", "error", err)
		abortUnavailable(c)
		return nil
	}
	b.log.Debug("cart session created", "session_id", sess.ID)
	return sess
}

// Peek returns the request's session, or a detached session with an empty,
// closed cart that is never stored. Use it on read-only routes.
func Peek(c *gin.Context) *Session {
	if sess, ok := FromContext(c); ok {
		return sess
	}
	return &Session{Cart: cart.New()}
}

func abortUnavailable(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, httpkit.ErrorResponse{Error: "session unavailable"})
}
