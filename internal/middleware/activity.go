package middleware

import (
	"time"

	"github.com/vebrypp/AKURA-APP-BE/internal/session"

	"github.com/gin-gonic/gin"
)

// Activity slides the idle window for requests that carry the refresh
// cookie but no bearer token (the cookie-only auth endpoints). A failed
// touch only shortens the idle window, so it is recorded on the context
// for the logger but never breaks the request. A nil clock means time.Now.
func Activity(store *session.Store, clock func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
			now := time.Now()
			if clock != nil {
				now = clock()
			}
			if err := store.TouchActivity(cookie, now); err != nil {
				_ = c.Error(err)
			}
		}
		c.Next()
	}
}
