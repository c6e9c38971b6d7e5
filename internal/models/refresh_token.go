package models

import "time"

// RefreshToken stores issued refresh tokens. A token is usable only while
// Revoked is false, ExpiresAt is in the future and the idle window since
// LastActivity has not elapsed. Rows are revoked, never deleted, so the
// table doubles as a session audit trail.
type RefreshToken struct {
	ID           uint      `gorm:"primaryKey"`
	Token        string    `gorm:"size:512;uniqueIndex;not null"`
	UserID       string    `gorm:"size:36;index;not null"`
	ExpiresAt    time.Time `gorm:"index;not null"`
	Revoked      bool      `gorm:"index;not null;default:false"`
	LastActivity time.Time `gorm:"not null"`
	CreatedAt    time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
