package domain

import "strings"

// Canonical category labels. Free-text labels from the catalog are folded
// into these on read; anything unrecognized passes through trimmed.
const (
	CategoryPhones     = "Phones"
	CategoryLaptops    = "Laptops"
	CategoryHeadphones = "Headphones"
	CategoryOther      = "Other"
)

// categorySynonyms maps lowercased, separator-collapsed labels to their
// canonical category.
var categorySynonyms = map[string]string{
	"phone": CategoryPhones, "phones": CategoryPhones,
	"mobile": CategoryPhones, "mobiles": CategoryPhones,

	"laptop": CategoryLaptops, "laptops": CategoryLaptops,
	"notebook": CategoryLaptops, "notebooks": CategoryLaptops,

	"headphone": CategoryHeadphones, "headphones": CategoryHeadphones,
	"earbuds": CategoryHeadphones, "earphones": CategoryHeadphones,
}

// NormalizeCategory canonicalizes a free-text category label. Case,
// surrounding whitespace, and hyphen/underscore separators are ignored when
// matching synonyms. Unrecognized non-empty labels are returned trimmed;
// empty input becomes "Other". Total and idempotent.
func NormalizeCategory(cat string) string {
	c := strings.ToLower(strings.TrimSpace(cat))
	c = strings.ReplaceAll(c, "-", " ")
	c = strings.ReplaceAll(c, "_", " ")

	if canonical, ok := categorySynonyms[c]; ok {
		return canonical
	}
	// Separators inside a word ("lap-tops", "head_phones") still name the
	// same category once collapsed.
	if canonical, ok := categorySynonyms[strings.ReplaceAll(c, " ", "")]; ok {
		return canonical
	}
	if strings.TrimSpace(cat) == "" {
		return CategoryOther
	}
	return strings.TrimSpace(cat)
}

// SpecKindFor maps a free-text category to the spec variant it selects.
func SpecKindFor(category string) SpecKind {
	switch NormalizeCategory(category) {
	case CategoryPhones:
		return SpecKindPhone
	case CategoryLaptops:
		return SpecKindLaptop
	case CategoryHeadphones:
		return SpecKindHeadphone
	default:
		return SpecKindOther
	}
}
