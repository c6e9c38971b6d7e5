package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/vebrypp/AKURA-APP-BE/internal/middleware"
	"github.com/vebrypp/AKURA-APP-BE/internal/session"
	"github.com/vebrypp/AKURA-APP-BE/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes the session lifecycle over HTTP. The refresh token
// travels in an http-only cookie, the access token in the response body,
// so the long-lived credential never reaches script-accessible storage.
type AuthHandler struct {
	Sessions     *session.Manager
	CookieSecure bool
}

func NewAuthHandler(sessions *session.Manager, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		Sessions:     sessions,
		CookieSecure: cookieSecure,
	}
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, tok string) {
	c.SetSameSite(http.SameSiteNoneMode)
	maxAge := int(h.Sessions.RefreshTTL / time.Second)
	c.SetCookie(middleware.CookieName, tok, maxAge, "/", "", h.CookieSecure, true)
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.CookieName, "", -1, "/", "", h.CookieSecure, true)
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials, opens a session and returns the access
// token. The refresh token is set as a cookie only.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusConflict, "Username and password are required")
		return
	}

	pair, _, err := h.Sessions.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			util.Error(c, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.setRefreshCookie(c, pair.RefreshToken)
	util.Success(c, http.StatusOK, util.Response{
		"message":     "Login Success",
		"accessToken": pair.AccessToken,
	})
}

// Refresh rotates the refresh cookie and returns a fresh access token.
// Invalid, expired and idle sessions all clear the cookie so the client
// cannot retry with the same stale value.
func (h *AuthHandler) Refresh(c *gin.Context) {
	cookie, err := c.Cookie(middleware.CookieName)
	if err != nil || cookie == "" {
		util.Error(c, http.StatusUnauthorized, "Token cannot be found.")
		return
	}

	pair, err := h.Sessions.Refresh(cookie)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidToken):
			h.clearRefreshCookie(c)
			util.Error(c, http.StatusForbidden, "Invalid token.")
		case errors.Is(err, session.ErrTokenExpired):
			h.clearRefreshCookie(c)
			util.Error(c, http.StatusForbidden, "Token expired. Please login again")
		case errors.Is(err, session.ErrSessionIdle):
			h.clearRefreshCookie(c)
			util.Error(c, http.StatusForbidden, "Session expired. Please login again")
		default:
			util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	h.setRefreshCookie(c, pair.RefreshToken)
	util.Success(c, http.StatusOK, util.Response{
		"accessToken": pair.AccessToken,
	})
}

// Logout revokes the session if a cookie is present and clears the cookie
// either way. Calling it without a session is a no-op, not an error.
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie, err := c.Cookie(middleware.CookieName)
	if err == nil && cookie != "" {
		if err := h.Sessions.Logout(cookie); err != nil {
			util.Error(c, http.StatusInternalServerError, "Internal Server Error")
			return
		}
	}

	h.clearRefreshCookie(c)
	util.Success(c, http.StatusOK, util.Response{"message": "Logged out"})
}

type registerReq struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Company  string `json:"company"`
	Address  string `json:"address"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Register creates a new user account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Name, username and password are required")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Username = strings.TrimSpace(req.Username)
	if len(req.Name) < 3 {
		util.Error(c, http.StatusBadRequest, "Name must be at least 3 character long")
		return
	}
	if len(req.Username) < 3 {
		util.Error(c, http.StatusBadRequest, "Username must be at least 3 character long")
		return
	}
	if strings.TrimSpace(req.Password) == "" {
		util.Error(c, http.StatusBadRequest, "password cannot be empty")
		return
	}

	_, err := h.Sessions.Register(session.RegisterInput{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
		Company:  req.Company,
		Address:  req.Address,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		if errors.Is(err, session.ErrDuplicateUser) {
			util.Error(c, http.StatusConflict, "Name or username already exist")
			return
		}
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	util.Success(c, http.StatusOK, util.Response{"message": "Register Success"})
}

// Profile returns the verified user attached by the auth gate. The
// password field is stripped before the user ever reaches the context.
func (h *AuthHandler) Profile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "No token provided")
		return
	}
	util.Success(c, http.StatusOK, util.Response{"user": user})
}
