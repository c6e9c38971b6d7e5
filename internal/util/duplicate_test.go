package util

import (
	"testing"
)

func TestNormalizeSize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{`1/2"`, `1/2"`},
		{"1/2”", `1/2"`},
		{"1/2″ , 3/4″", `1/2",3/4"`},
		{"  2 3/8\"   X   4 1/2\" ", `2 3/8" x 4 1/2"`},
		{"“6 5/8”", `"6 5/8"`},
	}
	for _, tc := range cases {
		if got := NormalizeSize(tc.in); got != tc.want {
			t.Errorf("NormalizeSize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFindDuplicateItems(t *testing.T) {
	items := []DescriptionItemKey{
		{Size: `1/2"`, Quantity: 4, MeasurementUnit: 1, BasePrice: 100},
		{Size: "1/2”", Quantity: 4, MeasurementUnit: 1, BasePrice: 100},  // same after normalization
		{Size: `1/2"`, Quantity: 5, MeasurementUnit: 1, BasePrice: 100}, // differs on quantity
		{Size: `1/2"  `, Quantity: 4, MeasurementUnit: 1, BasePrice: 100},
	}

	got := FindDuplicateItems(items)
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("duplicates = %v, want [1 3]", got)
	}
}

func TestFindDuplicateItems_NoDuplicates(t *testing.T) {
	items := []DescriptionItemKey{
		{Size: `1/2"`, Quantity: 4, MeasurementUnit: 1},
		{Size: `3/4"`, Quantity: 4, MeasurementUnit: 1},
	}
	if got := FindDuplicateItems(items); got != nil {
		t.Fatalf("duplicates = %v, want none", got)
	}
}
