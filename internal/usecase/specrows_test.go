package usecase

import (
	"reflect"
	"testing"

	"github.com/comparehub/shopper/internal/domain"
)

func fptr(v float64) *float64 { return &v }

func TestSpecRows(t *testing.T) {
	price := 999.0
	rating := 4.5
	result := &domain.ComparisonResult{
		Products: []domain.ComparisonRecord{
			{
				Product:      domain.Product{ID: 1, Brand: "Apple", Category: "Laptops"},
				BestOffer:    domain.BestOffer{Source: "Amazon", Price: &price, Rating: &rating},
				DisplayPrice: &price,
				Specs: domain.SpecBag{
					Kind: domain.SpecKindLaptop,
					Laptop: &domain.LaptopSpecs{
						CPU: "Apple M3",
						RAM: fptr(16),
					},
				},
			},
			{
				Product: domain.Product{ID: 2, Brand: "Dell", Category: "Laptops"},
				Specs: domain.SpecBag{
					Kind:   domain.SpecKindLaptop,
					Laptop: &domain.LaptopSpecs{CPU: "Intel i7"},
				},
			},
		},
	}

	rows := SpecRows(result)
	byLabel := map[string][]string{}
	for _, r := range rows {
		byLabel[r.Label] = r.Values
	}

	if got := byLabel["Brand"]; !reflect.DeepEqual(got, []string{"Apple", "Dell"}) {
		t.Errorf("Brand = %v", got)
	}
	if got := byLabel["Price"]; !reflect.DeepEqual(got, []string{"$999.00", "—"}) {
		t.Errorf("Price = %v, want formatted price then blank", got)
	}
	if got := byLabel["Rating"]; !reflect.DeepEqual(got, []string{"4.5", "—"}) {
		t.Errorf("Rating = %v", got)
	}
	if got := byLabel["CPU"]; !reflect.DeepEqual(got, []string{"Apple M3", "Intel i7"}) {
		t.Errorf("CPU = %v", got)
	}
	if got := byLabel["RAM (GB)"]; !reflect.DeepEqual(got, []string{"16", "—"}) {
		t.Errorf("RAM = %v, want value then blank", got)
	}

	// No product has a GPU or any headphone spec, so those rows are absent.
	for _, label := range []string{"GPU", "ANC", "Codec", "Multipoint"} {
		if _, ok := byLabel[label]; ok {
			t.Errorf("row %q should be omitted when no product has a value", label)
		}
	}
}

func TestSpecRows_Empty(t *testing.T) {
	if rows := SpecRows(nil); rows != nil {
		t.Errorf("SpecRows(nil) = %v, want nil", rows)
	}
	if rows := SpecRows(&domain.ComparisonResult{}); rows != nil {
		t.Errorf("SpecRows(empty) = %v, want nil", rows)
	}
}

func TestSpecRows_MixedKinds(t *testing.T) {
	anc := true
	result := &domain.ComparisonResult{
		Products: []domain.ComparisonRecord{
			{
				Product: domain.Product{ID: 1, Brand: "Sony", Category: "Headphones"},
				Specs: domain.SpecBag{
					Kind:      domain.SpecKindHeadphone,
					Headphone: &domain.HeadphoneSpecs{ANC: &anc, Type: "over-ear"},
				},
			},
			{
				Product: domain.Product{ID: 2, Brand: "Google", Category: "Phones"},
				Specs: domain.SpecBag{
					Kind:  domain.SpecKindPhone,
					Phone: &domain.PhoneSpecs{OS: "Android 14"},
				},
			},
		},
	}

	rows := SpecRows(result)
	byLabel := map[string][]string{}
	for _, r := range rows {
		byLabel[r.Label] = r.Values
	}

	if got := byLabel["ANC"]; !reflect.DeepEqual(got, []string{"Yes", "—"}) {
		t.Errorf("ANC = %v", got)
	}
	if got := byLabel["OS"]; !reflect.DeepEqual(got, []string{"—", "Android 14"}) {
		t.Errorf("OS = %v", got)
	}
	if got := byLabel["Type"]; !reflect.DeepEqual(got, []string{"over-ear", "—"}) {
		t.Errorf("Type = %v", got)
	}
}
