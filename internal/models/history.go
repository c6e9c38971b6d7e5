package models

import "time"

// History rows mirror every mutation of the reference and quotation tables.
// Action is a konstanta code (1 create, 2 edit, 3 delete); Name is the
// display name of the user who performed the action.

type CompanyHistory struct {
	ID        uint      `gorm:"primaryKey"`
	CompanyID string    `gorm:"size:36;index;not null"`
	Action    int       `gorm:"not null"`
	Name      string    `gorm:"size:64"`
	CreatedAt time.Time
}

type CompanyStaffHistory struct {
	ID             uint      `gorm:"primaryKey"`
	CompanyStaffID string    `gorm:"size:36;index;not null"`
	Action         int       `gorm:"not null"`
	Name           string    `gorm:"size:64"`
	CreatedAt      time.Time
}

type ServiceHistory struct {
	ID        uint      `gorm:"primaryKey"`
	ServiceID string    `gorm:"size:36;index;not null"`
	Action    int       `gorm:"not null"`
	Name      string    `gorm:"size:64"`
	CreatedAt time.Time
}

type ScopeHistory struct {
	ID        uint      `gorm:"primaryKey"`
	ScopeID   string    `gorm:"size:36;index;not null"`
	Action    int       `gorm:"not null"`
	Name      string    `gorm:"size:64"`
	CreatedAt time.Time
}

type QuotationHistory struct {
	ID           uint      `gorm:"primaryKey"`
	QuotationID  string    `gorm:"size:36;index;not null"`
	Action       int       `gorm:"not null"`
	ActionDetail string    `gorm:"size:64"`
	Name         string    `gorm:"size:64"`
	CreatedAt    time.Time
}
