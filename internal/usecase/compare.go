package usecase

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/comparehub/shopper/internal/domain"
	"github.com/comparehub/shopper/internal/logger"
	"go.uber.org/zap"
)

// Selection bounds for a comparison run.
const (
	MinCompareItems = 2
	MaxCompareItems = 4
)

// CompareService orchestrates a comparison run: one list-level fetch,
// supplementary detail fetches for incomplete entries only, and an
// order-independent merge into normalized per-product records.
type CompareService struct {
	catalog    domain.CatalogClient
	images     *ImageResolver
	generation atomic.Uint64
}

// NewCompareService creates a comparison service over the given catalog
// client. A nil resolver falls back to the bundled default catalog.
func NewCompareService(catalog domain.CatalogClient, images *ImageResolver) *CompareService {
	if images == nil {
		images = NewImageResolver(DefaultImageCatalog(), "")
	}
	return &CompareService{
		catalog: catalog,
		images:  images,
	}
}

// Compare aggregates the comparison view for the given product ids. Ids are
// deduplicated preserving order; fewer than 2 or more than 4 distinct ids
// is ErrInvalidSelection. A failed list-level fetch aborts the run; a
// failed detail fetch only degrades that one record. Runs superseded by a
// newer Compare call return ErrStaleRun instead of committing stale data.
func (s *CompareService) Compare(ctx context.Context, ids []int, q domain.ListQuery) (*domain.ComparisonResult, error) {
	ids = dedupeIDs(ids)
	if len(ids) < MinCompareItems || len(ids) > MaxCompareItems {
		return nil, domain.ErrInvalidSelection
	}

	gen := s.generation.Add(1)
	log := logger.FromCtx(ctx).With(zap.Ints("ids", ids), zap.Uint64("run", gen))

	payload, err := s.catalog.Compare(ctx, ids, q)
	if err != nil {
		return nil, err
	}
	if s.stale(gen) {
		return nil, domain.ErrStaleRun
	}

	details := s.fetchDetails(ctx, enrichmentQueue(payload.Products), q, log)
	if s.stale(gen) {
		return nil, domain.ErrStaleRun
	}

	records := make([]domain.ComparisonRecord, 0, len(payload.Products))
	for _, entry := range payload.Products {
		records = append(records, s.merge(entry, details[entry.ID]))
	}

	return &domain.ComparisonResult{
		Filters:  payload.Filters,
		Products: records,
	}, nil
}

func (s *CompareService) stale(gen uint64) bool {
	return s.generation.Load() != gen
}

// enrichmentQueue returns the entries whose list-level payload is missing
// pricing or specs. Entries that already have both are never re-fetched.
func enrichmentQueue(entries []domain.CompareEntry) []int {
	var ids []int
	for _, e := range entries {
		if e.ID <= 0 {
			continue
		}
		if !e.HasValidPricing() || e.Specs.IsEmpty() {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// fetchDetails issues the queued detail requests concurrently and joins
// them. Individual failures are logged and skipped; the merge then works
// with whatever list-level data existed.
func (s *CompareService) fetchDetails(ctx context.Context, ids []int, q domain.ListQuery, log *zap.Logger) map[int]*domain.ProductDetail {
	details := make(map[int]*domain.ProductDetail, len(ids))
	if len(ids) == 0 {
		return details
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, id := range ids {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			detail, err := s.catalog.GetProduct(ctx, id, q)
			if err != nil {
				log.Warn("detail enrichment skipped",
					zap.Int("productId", id),
					zap.Error(err))
				return
			}
			mu.Lock()
			details[id] = detail
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	return details
}

// merge builds the final record for one entry. Pricing precedence: valid
// list-level aggregate best offer, then the selector over the list-level
// offers, then the selector over the detail offers. Spec precedence:
// non-empty list-level bag, then the detail bag, then absent.
func (s *CompareService) merge(entry domain.CompareEntry, detail *domain.ProductDetail) domain.ComparisonRecord {
	offers := entry.Offers
	best := domain.BestOffer{}
	priced := false

	switch {
	case entry.BestOffer.Valid():
		best, priced = entry.BestOffer, true
	default:
		if b, ok := SelectBestOffer(entry.Offers); ok {
			best, priced = b, true
		} else if detail != nil {
			offers = detail.Offers
			if b, ok := SelectBestOffer(detail.Offers); ok {
				best, priced = b, true
			}
		}
	}

	specs := entry.Specs
	if specs.IsEmpty() && detail != nil {
		specs = detail.Specs
	}
	specs.Rekey(domain.SpecKindFor(entry.Category))

	record := domain.ComparisonRecord{
		Product:    entry.Product,
		Offers:     offers,
		BestOffer:  best,
		Specs:      specs,
		PriceLabel: domain.PriceLabelOriginal,
	}
	record.Category = domain.NormalizeCategory(entry.Category)
	record.ImageURL = s.images.Resolve(entry.Product)
	if priced {
		record.DisplayPrice = best.Price
		record.PriceLabel = domain.PriceLabelBestOffer
	}
	return record
}

// dedupeIDs drops non-positive and repeated ids, preserving first-seen
// order.
func dedupeIDs(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if id <= 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
