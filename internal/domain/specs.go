package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// SpecKind tags which category-specific variant a spec bag carries.
type SpecKind string

const (
	SpecKindLaptop    SpecKind = "Laptops"
	SpecKindPhone     SpecKind = "Phones"
	SpecKindHeadphone SpecKind = "Headphones"
	SpecKindOther     SpecKind = "Other"
)

// LaptopSpecs is the fixed attribute set for laptop products.
type LaptopSpecs struct {
	CPU          string
	GPU          string
	RAM          *float64
	Storage      *float64
	ScreenSize   *float64
	Resolution   string
	BatteryHours *float64
	Weight       *float64
	OS           string
}

// PhoneSpecs is the fixed attribute set for phone products.
type PhoneSpecs struct {
	CPU          string
	RAM          *float64
	Storage      *float64
	ScreenSize   *float64
	Resolution   string
	BatteryHours *float64
	Weight       *float64
	OS           string
}

// HeadphoneSpecs is the fixed attribute set for headphone products.
type HeadphoneSpecs struct {
	ANC          *bool
	Type         string
	CodecSupport string
	Multipoint   *bool
	BatteryHours *float64
	Weight       *float64
}

// SpecBag is the category-dependent technical attribute set of a product,
// modeled as a tagged union instead of a loose property map. Exactly one of
// the variant pointers is set for a known kind; unrecognized categories keep
// the raw key/value map in Other. A bag that decoded from an absent or
// zero-key document is empty, and empty means "no specs".
type SpecBag struct {
	Kind      SpecKind
	Laptop    *LaptopSpecs
	Phone     *PhoneSpecs
	Headphone *HeadphoneSpecs
	Other     map[string]any

	KeyFeatures []string
	Pros        []string
	Cons        []string
}

// IsEmpty reports whether the bag carries no spec data at all. A spec
// document with zero keys is empty.
func (b SpecBag) IsEmpty() bool {
	if b.Laptop != nil || b.Phone != nil || b.Headphone != nil {
		return false
	}
	if len(b.Other) > 0 {
		return false
	}
	return len(b.KeyFeatures) == 0 && len(b.Pros) == 0 && len(b.Cons) == 0
}

// UnmarshalJSON decodes an open spec document into the untyped Other map.
// Callers that know the product's category re-key the bag afterwards with
// Rekey; until then the bag is tagged SpecKindOther.
func (b *SpecBag) UnmarshalJSON(data []byte) error {
	*b = SpecBag{}
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return nil
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) == 0 {
		return nil
	}

	b.Kind = SpecKindOther
	b.KeyFeatures = specStringList(raw, "key_features")
	b.Pros = specStringList(raw, "pros")
	b.Cons = specStringList(raw, "cons")
	delete(raw, "key_features")
	delete(raw, "pros")
	delete(raw, "cons")
	b.Other = raw
	return nil
}

// Rekey redistributes the untyped attribute map into the typed variant for
// the given kind. Attributes outside the variant's fixed field set are
// dropped; unknown kinds keep the raw map.
func (b *SpecBag) Rekey(kind SpecKind) {
	if b.Laptop != nil || b.Phone != nil || b.Headphone != nil {
		return
	}
	if len(b.Other) == 0 {
		return
	}
	raw := b.Other

	switch kind {
	case SpecKindLaptop:
		b.Laptop = &LaptopSpecs{
			CPU:          specString(raw, "cpu"),
			GPU:          specString(raw, "gpu"),
			RAM:          specNumber(raw, "ram"),
			Storage:      specNumber(raw, "storage"),
			ScreenSize:   specNumber(raw, "screen_size", "display_size"),
			Resolution:   specString(raw, "resolution"),
			BatteryHours: specNumber(raw, "battery_hours"),
			Weight:       specNumber(raw, "weight"),
			OS:           specString(raw, "os"),
		}
	case SpecKindPhone:
		b.Phone = &PhoneSpecs{
			CPU:          specString(raw, "cpu"),
			RAM:          specNumber(raw, "ram"),
			Storage:      specNumber(raw, "storage"),
			ScreenSize:   specNumber(raw, "screen_size", "display_size"),
			Resolution:   specString(raw, "resolution"),
			BatteryHours: specNumber(raw, "battery_hours"),
			Weight:       specNumber(raw, "weight"),
			OS:           specString(raw, "os"),
		}
	case SpecKindHeadphone:
		b.Headphone = &HeadphoneSpecs{
			ANC:          specBool(raw, "anc"),
			Type:         specString(raw, "type"),
			CodecSupport: specString(raw, "codec_support"),
			Multipoint:   specBool(raw, "multipoint"),
			BatteryHours: specNumber(raw, "battery_hours"),
			Weight:       specNumber(raw, "weight"),
		}
	default:
		b.Kind = SpecKindOther
		return
	}

	b.Kind = kind
	b.Other = nil
}

// MarshalJSON renders the bag back to the flat document shape the catalog
// API uses. Empty bags marshal to null so clients can distinguish "no
// specs" from an empty object.
func (b SpecBag) MarshalJSON() ([]byte, error) {
	if b.IsEmpty() {
		return []byte("null"), nil
	}

	out := map[string]any{}
	switch {
	case b.Laptop != nil:
		putString(out, "cpu", b.Laptop.CPU)
		putString(out, "gpu", b.Laptop.GPU)
		putNumber(out, "ram", b.Laptop.RAM)
		putNumber(out, "storage", b.Laptop.Storage)
		putNumber(out, "screen_size", b.Laptop.ScreenSize)
		putString(out, "resolution", b.Laptop.Resolution)
		putNumber(out, "battery_hours", b.Laptop.BatteryHours)
		putNumber(out, "weight", b.Laptop.Weight)
		putString(out, "os", b.Laptop.OS)
	case b.Phone != nil:
		putString(out, "cpu", b.Phone.CPU)
		putNumber(out, "ram", b.Phone.RAM)
		putNumber(out, "storage", b.Phone.Storage)
		putNumber(out, "screen_size", b.Phone.ScreenSize)
		putString(out, "resolution", b.Phone.Resolution)
		putNumber(out, "battery_hours", b.Phone.BatteryHours)
		putNumber(out, "weight", b.Phone.Weight)
		putString(out, "os", b.Phone.OS)
	case b.Headphone != nil:
		putBool(out, "anc", b.Headphone.ANC)
		putString(out, "type", b.Headphone.Type)
		putString(out, "codec_support", b.Headphone.CodecSupport)
		putBool(out, "multipoint", b.Headphone.Multipoint)
		putNumber(out, "battery_hours", b.Headphone.BatteryHours)
		putNumber(out, "weight", b.Headphone.Weight)
	default:
		for k, v := range b.Other {
			out[k] = v
		}
	}

	if len(b.KeyFeatures) > 0 {
		out["key_features"] = b.KeyFeatures
	}
	if len(b.Pros) > 0 {
		out["pros"] = b.Pros
	}
	if len(b.Cons) > 0 {
		out["cons"] = b.Cons
	}
	return json.Marshal(out)
}

func specString(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			switch s := v.(type) {
			case string:
				if strings.TrimSpace(s) != "" {
					return strings.TrimSpace(s)
				}
			case float64:
				return strconv.FormatFloat(s, 'f', -1, 64)
			}
		}
	}
	return ""
}

func specNumber(raw map[string]any, keys ...string) *float64 {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return &n
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

func specBool(raw map[string]any, key string) *bool {
	if v, ok := raw[key].(bool); ok {
		return &v
	}
	return nil
}

func specStringList(raw map[string]any, key string) []string {
	items, ok := raw[key].([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func putString(out map[string]any, key, v string) {
	if v != "" {
		out[key] = v
	}
}

func putNumber(out map[string]any, key string, v *float64) {
	if v != nil {
		out[key] = *v
	}
}

func putBool(out map[string]any, key string, v *bool) {
	if v != nil {
		out[key] = *v
	}
}
