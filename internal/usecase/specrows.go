package usecase

import (
	"fmt"
	"strconv"

	"github.com/comparehub/shopper/internal/domain"
)

// blankCell marks an absent value in the comparison grid.
const blankCell = "—"

// SpecRows builds the label/values grid for the side-by-side comparison
// view. Base rows (brand, category, price, store, rating) are always
// present; a spec row is included only when at least one product has a
// value for it.
func SpecRows(result *domain.ComparisonResult) []domain.SpecRow {
	if result == nil || len(result.Products) == 0 {
		return nil
	}
	products := result.Products

	rows := []domain.SpecRow{
		row("Brand", products, func(p domain.ComparisonRecord) string { return p.Brand }),
		row("Category", products, func(p domain.ComparisonRecord) string { return p.Category }),
		row("Price", products, func(p domain.ComparisonRecord) string { return money(p.DisplayPrice) }),
		row("Store", products, func(p domain.ComparisonRecord) string { return p.BestOffer.Source }),
		row("Rating", products, func(p domain.ComparisonRecord) string {
			if p.BestOffer.Rating == nil {
				return ""
			}
			return strconv.FormatFloat(*p.BestOffer.Rating, 'f', 1, 64)
		}),
	}

	specRows := []struct {
		label string
		value func(domain.SpecBag) string
	}{
		{"CPU", func(b domain.SpecBag) string { return cellString(specCPU(b)) }},
		{"GPU", func(b domain.SpecBag) string {
			if b.Laptop != nil {
				return b.Laptop.GPU
			}
			return ""
		}},
		{"RAM (GB)", func(b domain.SpecBag) string { return cellNumber(specRAM(b)) }},
		{"Storage (GB)", func(b domain.SpecBag) string { return cellNumber(specStorage(b)) }},
		{"Screen (in)", func(b domain.SpecBag) string { return cellNumber(specScreen(b)) }},
		{"Resolution", func(b domain.SpecBag) string { return cellString(specResolution(b)) }},
		{"Battery (hrs)", func(b domain.SpecBag) string { return cellNumber(specBattery(b)) }},
		{"Weight (lb)", func(b domain.SpecBag) string { return cellNumber(specWeight(b)) }},
		{"OS", func(b domain.SpecBag) string { return cellString(specOS(b)) }},
		{"ANC", func(b domain.SpecBag) string {
			if b.Headphone == nil {
				return ""
			}
			return cellBool(b.Headphone.ANC)
		}},
		{"Type", func(b domain.SpecBag) string {
			if b.Headphone != nil {
				return b.Headphone.Type
			}
			return ""
		}},
		{"Codec", func(b domain.SpecBag) string {
			if b.Headphone != nil {
				return b.Headphone.CodecSupport
			}
			return ""
		}},
		{"Multipoint", func(b domain.SpecBag) string {
			if b.Headphone == nil {
				return ""
			}
			return cellBool(b.Headphone.Multipoint)
		}},
	}

	for _, sr := range specRows {
		values := make([]string, len(products))
		any := false
		for i, p := range products {
			values[i] = sr.value(p.Specs)
			if values[i] != "" {
				any = true
			}
		}
		if !any {
			continue
		}
		for i, v := range values {
			if v == "" {
				values[i] = blankCell
			}
		}
		rows = append(rows, domain.SpecRow{Label: sr.label, Values: values})
	}

	return rows
}

func row(label string, products []domain.ComparisonRecord, value func(domain.ComparisonRecord) string) domain.SpecRow {
	values := make([]string, len(products))
	for i, p := range products {
		values[i] = value(p)
		if values[i] == "" {
			values[i] = blankCell
		}
	}
	return domain.SpecRow{Label: label, Values: values}
}

// money formats a display price, or the blank cell for absent/non-positive
// values.
func money(v *float64) string {
	if v == nil || *v <= 0 {
		return ""
	}
	return fmt.Sprintf("$%.2f", *v)
}

func cellString(s string) string { return s }

func cellNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func cellBool(v *bool) string {
	if v == nil {
		return ""
	}
	if *v {
		return "Yes"
	}
	return "No"
}

func specCPU(b domain.SpecBag) string {
	switch {
	case b.Laptop != nil:
		return b.Laptop.CPU
	case b.Phone != nil:
		return b.Phone.CPU
	}
	return ""
}

func specRAM(b domain.SpecBag) *float64 {
	switch {
	case b.Laptop != nil:
		return b.Laptop.RAM
	case b.Phone != nil:
		return b.Phone.RAM
	}
	return nil
}

func specStorage(b domain.SpecBag) *float64 {
	switch {
	case b.Laptop != nil:
		return b.Laptop.Storage
	case b.Phone != nil:
		return b.Phone.Storage
	}
	return nil
}

func specScreen(b domain.SpecBag) *float64 {
	switch {
	case b.Laptop != nil:
		return b.Laptop.ScreenSize
	case b.Phone != nil:
		return b.Phone.ScreenSize
	}
	return nil
}

func specResolution(b domain.SpecBag) string {
	switch {
	case b.Laptop != nil:
		return b.Laptop.Resolution
	case b.Phone != nil:
		return b.Phone.Resolution
	}
	return ""
}

func specBattery(b domain.SpecBag) *float64 {
	switch {
	case b.Laptop != nil:
		return b.Laptop.BatteryHours
	case b.Phone != nil:
		return b.Phone.BatteryHours
	case b.Headphone != nil:
		return b.Headphone.BatteryHours
	}
	return nil
}

func specWeight(b domain.SpecBag) *float64 {
	switch {
	case b.Laptop != nil:
		return b.Laptop.Weight
	case b.Phone != nil:
		return b.Phone.Weight
	case b.Headphone != nil:
		return b.Headphone.Weight
	}
	return nil
}

func specOS(b domain.SpecBag) string {
	switch {
	case b.Laptop != nil:
		return b.Laptop.OS
	case b.Phone != nil:
		return b.Phone.OS
	}
	return ""
}
