package handler

import (
	"testing"
	"time"

	"github.com/vebrypp/AKURA-APP-BE/internal/models"
)

func sampleQuotation() *models.Quotation {
	return &models.Quotation{
		ID:            "q-1",
		No:            "Q-20250301-090000",
		Date:          time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		InquiryMethod: 2,
		InquiryDate:   time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC),
		Subject:       "TUBULAR INSPECTION",
		Location:      "BATAM",
		Staff: &models.CompanyStaff{
			Title: 1,
			Name:  "BUDI",
			Company: &models.Company{
				Type:    1,
				Company: "MAJU JAYA",
				Address: "JL. SUDIRMAN NO. 1",
			},
		},
		User: &models.User{Name: "ADMIN"},
	}
}

func TestQuotationListItemRendering(t *testing.T) {
	item := toListItem(sampleQuotation())

	if item.Customer != "Mr. BUDI" {
		t.Errorf("customer = %q", item.Customer)
	}
	if item.Company != "PT. MAJU JAYA" {
		t.Errorf("company = %q, want legal-form prefix applied", item.Company)
	}
	if item.InquiryMethod != "WhatsApp" {
		t.Errorf("inquiry method = %q", item.InquiryMethod)
	}
	if item.Date != "01 March 2025" {
		t.Errorf("date = %q", item.Date)
	}
	if item.InquiryDate != "20 February 2025" {
		t.Errorf("inquiry date = %q", item.InquiryDate)
	}
	if item.PreparedBy != "ADMIN" {
		t.Errorf("prepared by = %q", item.PreparedBy)
	}
}

func TestQuotationDetailRendering(t *testing.T) {
	detail := toDetail(sampleQuotation())

	if detail.Company != "PT. MAJU JAYA" {
		t.Errorf("company = %q, want legal-form prefix applied", detail.Company)
	}
	if detail.CompanyAddress != "JL. SUDIRMAN NO. 1" {
		t.Errorf("company address = %q", detail.CompanyAddress)
	}
	if detail.Customer != "Mr. BUDI" {
		t.Errorf("customer = %q", detail.Customer)
	}
}

func TestQuotationRendering_MissingRelations(t *testing.T) {
	item := toListItem(&models.Quotation{ID: "q-2", No: "Q-1"})

	if item.Customer != "" || item.Company != "" || item.PreparedBy != "" {
		t.Errorf("item = %+v, want empty display fields without relations", item)
	}
	if item.Date != "" || item.InquiryDate != "" {
		t.Errorf("zero dates must render empty, got %q / %q", item.Date, item.InquiryDate)
	}
}
