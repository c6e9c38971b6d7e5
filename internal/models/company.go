package models

import "time"

// Company is a customer company reference. Type is a konstanta code
// (1 PT., 2 CV., 3 PR.); Company and Address are stored uppercased.
type Company struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Type      int       `gorm:"not null" json:"type"`
	Company   string    `gorm:"size:128;uniqueIndex;not null" json:"company"`
	Address   string    `gorm:"size:255" json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Staff []CompanyStaff `gorm:"constraint:OnDelete:CASCADE" json:"staff,omitempty"`
}

// CompanyStaff is a contact person at a customer company. Title is a
// konstanta code (1 Mr., 2 Mrs., 3 Ms.).
type CompanyStaff struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CompanyID string    `gorm:"size:36;index;not null" json:"companyId"`
	Title     int       `gorm:"not null" json:"title"`
	Name      string    `gorm:"size:64;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Company *Company `gorm:"constraint:OnDelete:CASCADE" json:"company,omitempty"`
}
