package usecase

import (
	"regexp"
	"strings"

	"github.com/comparehub/shopper/internal/domain"
)

// Package-level compiled regex patterns for image key normalization
var (
	imageKeyCharsRegex   = regexp.MustCompile(`[^a-z0-9+ ]`)
	imageMultiSpaceRegex = regexp.MustCompile(`\s+`)
)

// FallbackProductImage is the generic placeholder returned when no bundled
// or remote image can be resolved. Resolution never fails.
const FallbackProductImage = "/assets/products/generic_product.png"

// ImageEntry is one (normalized key, reference) pair of the bundled image
// catalog. The catalog is an ordered list, not a map: the substring
// fallback accepts the first matching key in insertion order, so ordering
// is part of the contract.
type ImageEntry struct {
	Key string
	Ref string
}

// ImageResolver maps a product's name/brand/model to a bundled picture,
// falling back to the record's own image URL and finally to a generic
// placeholder.
type ImageResolver struct {
	catalog     []ImageEntry
	index       map[string]string
	placeholder string
}

// NewImageResolver builds a resolver over the given ordered catalog. Keys
// are normalized on insert; the first occurrence of a key wins. An empty
// placeholder falls back to FallbackProductImage.
func NewImageResolver(catalog []ImageEntry, placeholder string) *ImageResolver {
	if placeholder == "" {
		placeholder = FallbackProductImage
	}

	r := &ImageResolver{
		placeholder: placeholder,
		index:       make(map[string]string, len(catalog)),
	}
	for _, e := range catalog {
		key := normalizeImageKey(e.Key)
		if key == "" || e.Ref == "" {
			continue
		}
		if _, dup := r.index[key]; dup {
			continue
		}
		r.catalog = append(r.catalog, ImageEntry{Key: key, Ref: e.Ref})
		r.index[key] = e.Ref
	}
	return r
}

// Resolve returns an image reference for the product. Resolution order:
// exact catalog match on normalized name, model, then brand+model; first
// catalog key contained in the normalized name or model; the record's own
// image URL; the placeholder. The result is never empty.
func (r *ImageResolver) Resolve(p domain.Product) string {
	name := normalizeImageKey(p.Name)
	brand := normalizeImageKey(p.Brand)
	model := normalizeImageKey(p.Model)

	for _, key := range []string{name, model, strings.TrimSpace(brand + " " + model)} {
		if key == "" {
			continue
		}
		if ref, ok := r.index[key]; ok {
			return ref
		}
	}

	for _, e := range r.catalog {
		if (name != "" && strings.Contains(name, e.Key)) ||
			(model != "" && strings.Contains(model, e.Key)) {
			return e.Ref
		}
	}

	if p.ImageURL != "" {
		return p.ImageURL
	}
	return r.placeholder
}

// normalizeImageKey lowercases, trims, collapses internal whitespace,
// straightens curly apostrophes, and strips everything outside [a-z0-9+ ].
func normalizeImageKey(s string) string {
	out := strings.ToLower(strings.TrimSpace(s))
	out = strings.NewReplacer("’", "'", "‘", "'").Replace(out)
	out = imageMultiSpaceRegex.ReplaceAllString(out, " ")
	out = imageKeyCharsRegex.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}

// DefaultImageCatalog mirrors the bundled product pictures. More specific
// keys come before their prefixes (e.g. "pixel 8 pro" before "pixel 8") so
// the substring fallback prefers the closer match.
func DefaultImageCatalog() []ImageEntry {
	return []ImageEntry{
		{Key: "iphone 15", Ref: "/assets/products/iphone_15.png"},
		{Key: "samsung galaxy s25 ultra", Ref: "/assets/products/galaxy_s25_ultra.png"},
		{Key: "galaxy s24 ultra", Ref: "/assets/products/galaxy_s24_ultra.png"},
		{Key: "samsung galaxy s24", Ref: "/assets/products/galaxy_s24.png"},
		{Key: "galaxy s23", Ref: "/assets/products/galaxy_s23.png"},
		{Key: "pixel 8 pro", Ref: "/assets/products/pixel_8_pro.png"},
		{Key: "pixel 8", Ref: "/assets/products/pixel_8.png"},
		{Key: "google pixel 7", Ref: "/assets/products/pixel_7.png"},
		{Key: "oneplus 12", Ref: "/assets/products/oneplus_12.png"},
		{Key: "oneplus 11", Ref: "/assets/products/oneplus_11.png"},
		{Key: "moto edge+", Ref: "/assets/products/moto_edge_plus.png"},
		{Key: "xiaomi 14", Ref: "/assets/products/xiaomi_14.png"},
		{Key: "macbook pro 14", Ref: "/assets/products/macbook_pro_14.png"},
		{Key: "macbook air m3", Ref: "/assets/products/macbook_air_m3.png"},
		{Key: "macbook air m2", Ref: "/assets/products/macbook_air_m2.png"},
		{Key: "macbook air 13", Ref: "/assets/products/macbook_air_13.png"},
		{Key: "dell xps 13", Ref: "/assets/products/dell_xps_13.png"},
		{Key: "lenovo thinkpad", Ref: "/assets/products/lenovo_thinkpad.png"},
		{Key: "hp spectre", Ref: "/assets/products/hp_spectre.png"},
		{Key: "asus rog", Ref: "/assets/products/asus_rog.png"},
		{Key: "acer aspire 5", Ref: "/assets/products/acer_aspire_5.png"},
		{Key: "microsoft surface laptop 5", Ref: "/assets/products/surface_laptop_5.png"},
		{Key: "lg gram 16", Ref: "/assets/products/lg_gram_16.png"},
		{Key: "sony wh1000xm5", Ref: "/assets/products/sony_wh1000xm5.png"},
		{Key: "bose qc45", Ref: "/assets/products/bose_qc45.png"},
		{Key: "airpods pro", Ref: "/assets/products/airpods_pro.png"},
		{Key: "sennheiser momentum", Ref: "/assets/products/sennheiser_momentum.png"},
		{Key: "beats studio pro", Ref: "/assets/products/beats_studio_pro.png"},
		{Key: "jbl tune 670nc", Ref: "/assets/products/jbl_tune_670nc.png"},
		{Key: "jbl tune 520bt", Ref: "/assets/products/jbl_tune_520bt.png"},
		{Key: "fitbit sense 3", Ref: "/assets/products/fitbit_sense_3.png"},
	}
}
