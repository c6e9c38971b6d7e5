package session

import (
	"errors"
	"strings"
	"time"

	"github.com/vebrypp/AKURA-APP-BE/internal/models"

	"gorm.io/gorm"
)

// Store persists refresh tokens. It is the single source of truth for
// session validity; the signed token itself only proves authenticity.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// Create inserts a fresh, non-revoked row for userID.
func (s *Store) Create(userID, tok string, expiresAt, now time.Time) (*models.RefreshToken, error) {
	row := &models.RefreshToken{
		Token:        tok,
		UserID:       userID,
		ExpiresAt:    expiresAt,
		Revoked:      false,
		LastActivity: now,
	}
	if err := s.DB.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// FindByToken returns the row for tok, or (nil, nil) when absent.
func (s *Store) FindByToken(tok string) (*models.RefreshToken, error) {
	var row models.RefreshToken
	err := s.DB.Where("token = ?", tok).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// MarkRevoked flips the revoked flag. Updating an absent or
// already-revoked token is a no-op, which makes logout idempotent.
func (s *Store) MarkRevoked(tok string) error {
	return s.DB.Model(&models.RefreshToken{}).
		Where("token = ?", tok).
		Update("revoked", true).Error
}

// TouchActivity slides the idle window for tok. Called on every request
// that presents the refresh cookie, not only on explicit refresh calls.
func (s *Store) TouchActivity(tok string, now time.Time) error {
	return s.DB.Model(&models.RefreshToken{}).
		Where("token = ?", tok).
		Update("last_activity", now).Error
}

// FindLatestActive returns the newest non-revoked row for userID, or
// (nil, nil) when the user has no live session. Used to recover the losing
// side of a rotation race.
func (s *Store) FindLatestActive(userID string) (*models.RefreshToken, error) {
	var row models.RefreshToken
	err := s.DB.Where("user_id = ? AND revoked = ?", userID, false).
		Order("created_at DESC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Rotate revokes oldTok and inserts newRow in one transaction. A partial
// failure would strand the user with no valid token or leave two valid
// ones, so both writes commit or neither does.
func (s *Store) Rotate(oldTok string, newRow *models.RefreshToken) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.RefreshToken{}).
			Where("token = ?", oldTok).
			Update("revoked", true).Error; err != nil {
			return err
		}
		return tx.Create(newRow).Error
	})
}

// IsDuplicateErr reports whether err is a unique-constraint violation.
// Two refresh calls racing within the same second mint byte-identical
// JWTs (second-resolution iat/exp), so the loser's insert hits the unique
// token index. The string check backs up gorm's error translation for
// sqlite driver versions that predate it.
func IsDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
