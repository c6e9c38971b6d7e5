package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/vebrypp/AKURA-APP-BE/internal/models"
	"github.com/vebrypp/AKURA-APP-BE/internal/token"
	"github.com/vebrypp/AKURA-APP-BE/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CookieName is the refresh token cookie shared with the auth handlers.
const CookieName = "refreshToken"

// CurrentUserKey is the context key the gate stores the verified user
// under.
const CurrentUserKey = "currentUser"

// Auth validates the bearer access token, loads the user and puts it into
// the request context with the password stripped. When the request also
// carries the refresh cookie, its activity timestamp is slid forward so
// ordinary API traffic keeps the session alive.
func Auth(issuer *token.Issuer, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}
		if tokenStr == "" {
			util.Error(c, http.StatusUnauthorized, "No token provided")
			c.Abort()
			return
		}

		claims, err := issuer.VerifyAccess(tokenStr)
		if err != nil {
			if errors.Is(err, token.ErrExpired) {
				util.ErrorCode(c, http.StatusUnauthorized,
					"Access token expired", "ACCESS_TOKEN_EXPIRED")
			} else {
				util.ErrorCode(c, http.StatusUnauthorized,
					"Invalid access token", "ACCESS_TOKEN_INVALID")
			}
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", claims.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				util.Error(c, http.StatusUnauthorized, "User not found")
			} else {
				util.Error(c, http.StatusInternalServerError, "Internal Server Error")
			}
			c.Abort()
			return
		}

		user.Password = ""
		c.Set(CurrentUserKey, &user)

		// sliding-window keep-alive for the session behind the cookie
		if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
			now := time.Now()
			if issuer.Now != nil {
				now = issuer.Now()
			}
			if err := db.Model(&models.RefreshToken{}).
				Where("token = ?", cookie).
				Update("last_activity", now).Error; err != nil {
				_ = c.Error(err)
			}
		}

		c.Next()
	}
}

// CurrentUser pulls the verified user out of the gin context.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
