package util

import "testing"

func TestGetMeasurementUnit(t *testing.T) {
	cases := []struct {
		code int
		want string
	}{
		{1, "Joint"},
		{2, "EA"},
		{3, "Connection"},
		{4, "Day"},
		{0, ""},
		{99, ""},
	}
	for _, tc := range cases {
		if got := GetMeasurementUnit(tc.code); got != tc.want {
			t.Errorf("GetMeasurementUnit(%d) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestGetInquiryMethod(t *testing.T) {
	cases := []struct {
		code int
		want string
	}{
		{1, "Email"},
		{2, "WhatsApp"},
		{3, "Verbal"},
		{4, "Job Order Request"},
		{5, ""},
	}
	for _, tc := range cases {
		if got := GetInquiryMethod(tc.code); got != tc.want {
			t.Errorf("GetInquiryMethod(%d) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestGetTitleCustomer(t *testing.T) {
	cases := []struct {
		code int
		want string
	}{
		{1, "Mr."},
		{2, "Mrs."},
		{3, "Ms."},
		{4, ""},
	}
	for _, tc := range cases {
		if got := GetTitleCustomer(tc.code); got != tc.want {
			t.Errorf("GetTitleCustomer(%d) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestGetCompanyType(t *testing.T) {
	cases := []struct {
		code int
		want string
	}{
		{1, "PT. "},
		{2, "CV. "},
		{3, "PR. "},
		{0, ""},
	}
	for _, tc := range cases {
		if got := GetCompanyType(tc.code); got != tc.want {
			t.Errorf("GetCompanyType(%d) = %q, want %q", tc.code, got, tc.want)
		}
	}
}
