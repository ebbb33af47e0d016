package domain

// CompareEntry is one possibly-partial record from the list-level compare
// endpoint. Pricing or specs may be missing; the aggregator decides per
// entry whether a detail fetch is needed.
type CompareEntry struct {
	Product
	Offers    []Offer   `json:"offers"`
	BestOffer BestOffer `json:"bestOffer"`
	Specs     SpecBag   `json:"specs,omitempty"`
}

// HasValidPricing reports whether the entry already carries usable pricing:
// either a valid aggregate best offer or at least one offer with a strictly
// positive price.
func (e CompareEntry) HasValidPricing() bool {
	if e.BestOffer.Valid() {
		return true
	}
	for _, o := range e.Offers {
		if o.Price.Valid() {
			return true
		}
	}
	return false
}

// ComparePayload is the list-level compare response: the partial records
// plus the filter set the server actually applied.
type ComparePayload struct {
	Filters  MarketPreferences `json:"filters"`
	Products []CompareEntry    `json:"products"`
}

// Price labels attached to merged comparison records. "best offer" means a
// priced, sourced offer exists; "original price" marks an unvalidated
// fallback amount not computed by the selector.
const (
	PriceLabelBestOffer = "best offer"
	PriceLabelOriginal  = "original price"
)

// ComparisonRecord is the merged, normalized per-product view produced by
// the comparison aggregator.
type ComparisonRecord struct {
	Product
	Offers       []Offer   `json:"offers"`
	BestOffer    BestOffer `json:"bestOffer"`
	Specs        SpecBag   `json:"specs"`
	DisplayPrice *float64  `json:"displayPrice"`
	PriceLabel   string    `json:"priceLabel"`
}

// ComparisonResult is the outcome of one aggregation run.
type ComparisonResult struct {
	Filters  MarketPreferences  `json:"filters"`
	Products []ComparisonRecord `json:"products"`
}

// LowestPrice returns the minimum display price across the merged records,
// or nil when no record has a usable price. Used for best-value
// highlighting.
func (r ComparisonResult) LowestPrice() *float64 {
	var lowest *float64
	for _, p := range r.Products {
		if p.DisplayPrice == nil || *p.DisplayPrice <= 0 {
			continue
		}
		if lowest == nil || *p.DisplayPrice < *lowest {
			v := *p.DisplayPrice
			lowest = &v
		}
	}
	return lowest
}

// SpecRow is one label/values row of the side-by-side comparison grid.
type SpecRow struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}
