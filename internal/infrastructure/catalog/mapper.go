package catalog

import "github.com/comparehub/shopper/internal/domain"

// mapDetail normalizes a decoded detail payload: the open spec document is
// re-keyed into the typed variant for the product's category, and the offer
// list is never nil.
func mapDetail(d *domain.ProductDetail) {
	if d.Offers == nil {
		d.Offers = []domain.Offer{}
	}
	d.Specs.Rekey(domain.SpecKindFor(d.Category))
}

// mapComparePayload normalizes the list-level compare payload the same way,
// entry by entry. The payload may be partial; emptiness is preserved so the
// aggregator can detect what needs enrichment.
func mapComparePayload(p *domain.ComparePayload) {
	if p.Products == nil {
		p.Products = []domain.CompareEntry{}
	}
	for i := range p.Products {
		e := &p.Products[i]
		if e.Offers == nil {
			e.Offers = []domain.Offer{}
		}
		e.Specs.Rekey(domain.SpecKindFor(e.Category))
	}
}
