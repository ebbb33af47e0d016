package domain

import "testing"

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"phones", "Phones"},
		{"Phone", "Phones"},
		{"MOBILE", "Phones"},
		{"mobiles", "Phones"},
		{"laptop", "Laptops"},
		{"Laptops", "Laptops"},
		{"notebooks", "Laptops"},
		{"lap-tops", "Laptops"},
		{"lap_tops", "Laptops"},
		{"headphone", "Headphones"},
		{"EarBuds", "Headphones"},
		{"earphones", "Headphones"},
		{"head-phones", "Headphones"},
		{"", "Other"},
		{"   ", "Other"},
		{"Smart Watches", "Smart Watches"},
		{"  Tablets  ", "Tablets"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeCategory(tt.in); got != tt.want {
				t.Errorf("NormalizeCategory(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeCategoryIdempotent(t *testing.T) {
	inputs := []string{"phones", "Laptops", "lap-tops", "", "Smart Watches", "EARBUDS", "  x  "}
	for _, in := range inputs {
		once := NormalizeCategory(in)
		twice := NormalizeCategory(once)
		if once != twice {
			t.Errorf("NormalizeCategory not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestSpecKindFor(t *testing.T) {
	tests := []struct {
		in   string
		want SpecKind
	}{
		{"phones", SpecKindPhone},
		{"laptop", SpecKindLaptop},
		{"earbuds", SpecKindHeadphone},
		{"", SpecKindOther},
		{"cameras", SpecKindOther},
	}
	for _, tt := range tests {
		if got := SpecKindFor(tt.in); got != tt.want {
			t.Errorf("SpecKindFor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
