package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vebrypp/AKURA-APP-BE/internal/config"
	"github.com/vebrypp/AKURA-APP-BE/internal/models"
	"github.com/vebrypp/AKURA-APP-BE/internal/token"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Manager orchestrates the session lifecycle: login, refresh with
// rotation, logout and registration. All state lives in the store, so any
// number of server instances can share it.
type Manager struct {
	DB         *gorm.DB
	Store      *Store
	Issuer     *token.Issuer
	RefreshTTL time.Duration
	IdleLimit  time.Duration
	BcryptCost int

	// Now is the clock for expiry and idle checks; nil means time.Now.
	Now func() time.Time
}

// NewManager wires a Manager from the loaded auth configuration.
func NewManager(db *gorm.DB, cfg config.AuthConfig) *Manager {
	return &Manager{
		DB:    db,
		Store: NewStore(db),
		Issuer: &token.Issuer{
			AccessSecret:  []byte(cfg.AccessSecret),
			RefreshSecret: []byte(cfg.RefreshSecret),
			AccessTTL:     time.Duration(cfg.AccessTTLMinutes) * time.Minute,
			RefreshTTL:    time.Duration(cfg.RefreshTTLDays) * 24 * time.Hour,
		},
		RefreshTTL: time.Duration(cfg.RefreshTTLDays) * 24 * time.Hour,
		IdleLimit:  time.Duration(cfg.InactivityLimitMinutes) * time.Minute,
		BcryptCost: cfg.BcryptCost,
	}
}

func (m *Manager) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// TokenPair is what a successful login or refresh hands back to the
// transport layer: the access token for the response body and the refresh
// token for the cookie.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Login verifies the credentials and opens a new session. Unknown
// usernames and wrong passwords produce the same ErrInvalidCredentials so
// responses cannot be used to enumerate accounts.
func (m *Manager) Login(username, password string) (*TokenPair, *models.User, error) {
	var user models.User
	err := m.DB.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	access, err := m.Issuer.IssueAccess(user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := m.Issuer.IssueRefresh(user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("issue refresh token: %w", err)
	}

	now := m.now()
	if _, err := m.Store.Create(user.ID, refresh, now.Add(m.RefreshTTL), now); err != nil {
		return nil, nil, fmt.Errorf("persist refresh token: %w", err)
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, &user, nil
}

// Refresh rotates a refresh token. Check order: signature, store lookup
// (absent or revoked), hard TTL, idle limit, then the atomic
// revoke-and-create. Expiry and idle failures revoke the row before
// returning so a stale cookie cannot be replayed.
func (m *Manager) Refresh(cookieToken string) (*TokenPair, error) {
	if _, err := m.Issuer.VerifyRefresh(cookieToken); err != nil && !errors.Is(err, token.ErrExpired) {
		// Signature failures are fatal; expiry is re-checked against the
		// store record, which is authoritative for revocation.
		return nil, ErrInvalidToken
	}

	row, err := m.Store.FindByToken(cookieToken)
	if err != nil {
		return nil, fmt.Errorf("find refresh token: %w", err)
	}
	if row == nil || row.Revoked {
		return nil, ErrInvalidToken
	}

	now := m.now()

	if now.After(row.ExpiresAt) {
		if err := m.Store.MarkRevoked(cookieToken); err != nil {
			return nil, fmt.Errorf("revoke expired token: %w", err)
		}
		return nil, ErrTokenExpired
	}

	if now.Sub(row.LastActivity) > m.IdleLimit {
		if err := m.Store.MarkRevoked(cookieToken); err != nil {
			return nil, fmt.Errorf("revoke idle token: %w", err)
		}
		return nil, ErrSessionIdle
	}

	access, err := m.Issuer.IssueAccess(row.UserID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	newRefresh, err := m.Issuer.IssueRefresh(row.UserID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	newRow := &models.RefreshToken{
		Token:        newRefresh,
		UserID:       row.UserID,
		ExpiresAt:    now.Add(m.RefreshTTL),
		LastActivity: now,
	}

	if err := m.Store.Rotate(cookieToken, newRow); err != nil {
		if IsDuplicateErr(err) {
			// A concurrent refresh won the rotation. Hand the loser the
			// winner's still-active token so no caller is left
			// session-less.
			existing, ferr := m.Store.FindLatestActive(row.UserID)
			if ferr != nil {
				return nil, fmt.Errorf("recover rotation race: %w", ferr)
			}
			if existing != nil {
				return &TokenPair{AccessToken: access, RefreshToken: existing.Token}, nil
			}
		}
		return nil, fmt.Errorf("rotate refresh token: %w", err)
	}

	return &TokenPair{AccessToken: access, RefreshToken: newRefresh}, nil
}

// Logout revokes the session behind cookieToken. Absent or already-revoked
// tokens are a no-op; logout always succeeds.
func (m *Manager) Logout(cookieToken string) error {
	if cookieToken == "" {
		return nil
	}
	return m.Store.MarkRevoked(cookieToken)
}

// RegisterInput carries the registration payload. Optional profile fields
// depend on the deployment variant and may be empty.
type RegisterInput struct {
	Name     string
	Username string
	Password string
	Company  string
	Address  string
	Email    string
	Phone    string
}

// Register creates a user. The display name is uppercased before the
// uniqueness check and storage.
func (m *Manager) Register(in RegisterInput) (*models.User, error) {
	name := strings.ToUpper(strings.TrimSpace(in.Name))

	var count int64
	if err := m.DB.Model(&models.User{}).
		Where("name = ? OR username = ?", name, in.Username).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if count > 0 {
		return nil, ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), m.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Name:     name,
		Username: in.Username,
		Password: string(hash),
		Company:  in.Company,
		Address:  in.Address,
		Email:    in.Email,
		Phone:    in.Phone,
	}
	if err := m.DB.Create(user).Error; err != nil {
		if IsDuplicateErr(err) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
