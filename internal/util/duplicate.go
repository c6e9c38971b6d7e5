package util

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	fancyQuotes = strings.NewReplacer("“", `"`, "”", `"`, "″", `"`)
	commaSpace  = regexp.MustCompile(`\s*,\s*`)
	multiSpace  = regexp.MustCompile(`\s+`)
)

// NormalizeSize canonicalizes a size string so "1/2\", 3/4”" and
// '1/2" ,3/4"' compare equal.
func NormalizeSize(s string) string {
	s = fancyQuotes.Replace(strings.TrimSpace(s))
	s = commaSpace.ReplaceAllString(s, ",")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.ToLower(s)
}

// DescriptionItemKey identifies a description item for duplicate checks.
type DescriptionItemKey struct {
	Size            string
	Quantity        int
	MeasurementUnit int
	BasePrice       float64
	SpecialPrice    float64
}

// FindDuplicateItems returns the indexes of items that repeat an earlier
// entry after size normalization.
func FindDuplicateItems(items []DescriptionItemKey) []int {
	seen := make(map[string]bool, len(items))
	var duplicates []int

	for i, item := range items {
		key := fmt.Sprintf("%s|%d|%d|%g|%g",
			NormalizeSize(item.Size), item.Quantity, item.MeasurementUnit,
			item.BasePrice, item.SpecialPrice)
		if seen[key] {
			duplicates = append(duplicates, i)
		} else {
			seen[key] = true
		}
	}
	return duplicates
}
