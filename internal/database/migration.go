package database

import (
	"fmt"

	"github.com/vebrypp/AKURA-APP-BE/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Company{},
		&models.CompanyStaff{},
		&models.CompanyHistory{},
		&models.CompanyStaffHistory{},
		&models.Service{},
		&models.Scope{},
		&models.ServiceDescription{},
		&models.ServiceDescriptionItem{},
		&models.ServiceHistory{},
		&models.ScopeHistory{},
		&models.Quotation{},
		&models.QuotationDescription{},
		&models.QuotationDescriptionItem{},
		&models.QuotationHistory{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
