package models

import "time"

// Quotation is a priced offer to a customer staff contact. Free-text fields
// are stored uppercased; InquiryMethod is a konstanta code (1 Email,
// 2 WhatsApp, 3 Verbal, 4 Job Order Request).
type Quotation struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	No              string    `gorm:"size:64" json:"no"`
	Date            time.Time `json:"date"`
	StaffID         string    `gorm:"size:36;index;not null" json:"staffId"`
	UserID          string    `gorm:"size:36;index;not null" json:"userId"`
	InquiryMethod   int       `gorm:"not null" json:"inquiryMethod"`
	InquiryDate     time.Time `json:"inquiryDate"`
	Subject         string    `gorm:"size:255;not null" json:"subject"`
	TermOfPayment   string    `gorm:"size:128" json:"termOfPayment"`
	Validity        string    `gorm:"size:128" json:"validity"`
	Tax             int       `json:"tax"`
	SupplyAkura     string    `gorm:"size:255" json:"supplyAkura"`
	SupplyCustomer  string    `gorm:"size:255" json:"supplyCustomer"`
	Location        string    `gorm:"size:255" json:"location"`
	Accomplished    string    `gorm:"size:255" json:"accomplished"`
	DeliveryReports string    `gorm:"size:255" json:"deliveryReports"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	Staff        *CompanyStaff          `gorm:"constraint:OnDelete:RESTRICT" json:"staff,omitempty"`
	User         *User                  `json:"user,omitempty"`
	Descriptions []QuotationDescription `gorm:"constraint:OnDelete:CASCADE" json:"descriptions,omitempty"`
}

// QuotationDescription links a quotation to a quoted service description.
type QuotationDescription struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	QuotationID   string    `gorm:"size:36;index;not null" json:"quotationId"`
	DescriptionID string    `gorm:"size:36;index;not null" json:"descriptionId"`
	CreatedAt     time.Time `json:"createdAt"`

	Description *ServiceDescription        `gorm:"foreignKey:DescriptionID" json:"description,omitempty"`
	Items       []QuotationDescriptionItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// QuotationDescriptionItem is a concrete line item under a quoted
// description; Price is copied from the catalog item at creation time so a
// later price change does not rewrite issued quotations.
type QuotationDescriptionItem struct {
	ID                     string    `gorm:"primaryKey;size:36" json:"id"`
	QuotationDescriptionID string    `gorm:"size:36;index;not null" json:"quotationDescriptionId"`
	Name                   string    `gorm:"size:128;not null" json:"name"`
	Quantity               int       `gorm:"not null" json:"quantity"`
	Price                  float64   `gorm:"not null" json:"price"`
	TotalPrice             float64   `gorm:"not null" json:"totalPrice"`
	CreatedAt              time.Time `json:"createdAt"`
}
