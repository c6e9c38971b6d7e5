package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/vebrypp/AKURA-APP-BE/internal/models"
	"github.com/vebrypp/AKURA-APP-BE/internal/token"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.RefreshToken{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// testManager builds a Manager with an adjustable clock shared by the
// issuer, so expiry and idle windows can be walked deterministically.
func testManager(t *testing.T) (*Manager, *time.Time) {
	t.Helper()

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	db := testDB(t)
	m := &Manager{
		DB:    db,
		Store: NewStore(db),
		Issuer: &token.Issuer{
			AccessSecret:  []byte("access-secret"),
			RefreshSecret: []byte("refresh-secret"),
			AccessTTL:     15 * time.Minute,
			RefreshTTL:    7 * 24 * time.Hour,
			Now:           clock,
		},
		RefreshTTL: 7 * 24 * time.Hour,
		IdleLimit:  30 * time.Minute,
		BcryptCost: 4, // keep test runs fast
		Now:        clock,
	}
	return m, &now
}

func mustRegister(t *testing.T, m *Manager, name, username, password string) *models.User {
	t.Helper()
	user, err := m.Register(RegisterInput{Name: name, Username: username, Password: password})
	if err != nil {
		t.Fatalf("Register(%q) error: %v", username, err)
	}
	return user
}

func activeTokens(t *testing.T, m *Manager, userID string) []models.RefreshToken {
	t.Helper()
	var rows []models.RefreshToken
	if err := m.DB.Where("user_id = ? AND revoked = ?", userID, false).
		Find(&rows).Error; err != nil {
		t.Fatalf("query active tokens: %v", err)
	}
	return rows
}
