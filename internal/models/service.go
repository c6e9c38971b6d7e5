package models

import "time"

// Service is a top-level service reference (e.g. an inspection discipline).
type Service struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:128;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Scopes []Scope `gorm:"constraint:OnDelete:CASCADE" json:"scopes,omitempty"`
}

// Scope groups a service's descriptions (scope of work).
type Scope struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	ServiceID string    `gorm:"size:36;index;not null" json:"serviceId"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Service *Service `gorm:"constraint:OnDelete:CASCADE" json:"service,omitempty"`
}

// ServiceDescription is a quotable line of work under a scope.
type ServiceDescription struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	ScopeID     string    `gorm:"size:36;index;not null" json:"scopeId"`
	Description string    `gorm:"size:255;not null" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Scope *Scope                   `gorm:"constraint:OnDelete:CASCADE" json:"scope,omitempty"`
	Items []ServiceDescriptionItem `gorm:"foreignKey:DescriptionID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// ServiceDescriptionItem is a priced size/quantity variant of a description.
// MeasurementUnit is a konstanta code (1 Joint, 2 EA, 3 Connection, 4 Day).
type ServiceDescriptionItem struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	DescriptionID   string    `gorm:"size:36;index;not null" json:"descriptionId"`
	Size            string    `gorm:"size:128;not null" json:"size"`
	Quantity        int       `gorm:"not null" json:"quantity"`
	MeasurementUnit int       `gorm:"not null" json:"measurementUnit"`
	BasePrice       float64   `gorm:"not null" json:"basePrice"`
	SpecialPrice    float64   `json:"specialPrice"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
