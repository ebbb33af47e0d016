package usecase

import (
	"math"
	"sort"

	"github.com/comparehub/shopper/internal/domain"
)

// SelectBestOffer picks the single best offer from a raw offer list: lowest
// strictly-positive finite price wins, price ties broken by highest rating.
// A missing rating loses against any present rating. Returns ok=false when
// no valid offer exists; the returned BestOffer is then the empty
// placeholder. Stable and total: empty input is not an error.
func SelectBestOffer(offers []domain.Offer) (domain.BestOffer, bool) {
	valid := make([]domain.Offer, 0, len(offers))
	for _, o := range offers {
		if o.Price.Valid() {
			valid = append(valid, o)
		}
	}
	if len(valid) == 0 {
		return domain.BestOffer{}, false
	}

	sort.SliceStable(valid, func(i, j int) bool {
		if valid[i].Price != valid[j].Price {
			return valid[i].Price < valid[j].Price
		}
		return offerRating(valid[i]) > offerRating(valid[j])
	})

	winner := valid[0]
	price := float64(winner.Price)
	best := domain.BestOffer{
		Source: winner.Source,
		Price:  &price,
		Rating: winner.Rating,
	}
	if winner.URL != "" {
		url := winner.URL
		best.URL = &url
	}
	return best, true
}

// offerRating returns the rating used for tie-breaking; absent ratings
// compare lower than any present rating.
func offerRating(o domain.Offer) float64 {
	if o.Rating == nil {
		return math.Inf(-1)
	}
	return *o.Rating
}
