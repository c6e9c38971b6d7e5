package models

import "time"

// User represents an application user. Name is stored uppercased (display
// convention used across the quotation documents); Password holds a bcrypt
// hash and is never serialized.
type User struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Name     string `gorm:"size:64;uniqueIndex;not null" json:"name"`
	Username string `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Password string `gorm:"size:255;not null" json:"-"`

	Company string `gorm:"size:128" json:"company"`
	Address string `gorm:"size:255" json:"address"`
	Email   string `gorm:"size:128" json:"email"`
	Phone   string `gorm:"size:32" json:"phone"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
