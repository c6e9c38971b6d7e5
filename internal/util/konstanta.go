package util

// Konstanta codes shared with the frontend. The database stores the codes;
// responses and exports carry the labels.

const (
	ActionCreate = 1
	ActionEdit   = 2
	ActionDelete = 3
)

// GetMeasurementUnit maps a measurement-unit code to its label.
func GetMeasurementUnit(val int) string {
	switch val {
	case 1:
		return "Joint"
	case 2:
		return "EA"
	case 3:
		return "Connection"
	case 4:
		return "Day"
	default:
		return ""
	}
}

// GetInquiryMethod maps an inquiry-method code to its label.
func GetInquiryMethod(val int) string {
	switch val {
	case 1:
		return "Email"
	case 2:
		return "WhatsApp"
	case 3:
		return "Verbal"
	case 4:
		return "Job Order Request"
	default:
		return ""
	}
}

// GetTitleCustomer maps a staff title code to its salutation.
func GetTitleCustomer(val int) string {
	switch val {
	case 1:
		return "Mr."
	case 2:
		return "Mrs."
	case 3:
		return "Ms."
	default:
		return ""
	}
}

// GetCompanyType maps a company type code to its legal-form prefix.
func GetCompanyType(val int) string {
	switch val {
	case 1:
		return "PT. "
	case 2:
		return "CV. "
	case 3:
		return "PR. "
	default:
		return ""
	}
}
