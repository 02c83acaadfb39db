package catalog

import (
	"errors"
	"fmt"

	"layers-storefront/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrUnknownCategory = errors.New("unknown category")
)

// DefaultRelatedLimit is how many related products a detail page shows
const DefaultRelatedLimit = 4

// Filter is the catalog page filter input: a category or All
type Filter string

// FilterAll selects the whole catalog
const FilterAll Filter = "All"

// Filters lists the filter buttons in display order
var Filters = []Filter{FilterAll, Filter(domain.CategoryWatches), Filter(domain.CategorySkins), Filter(domain.CategoryAccessories)}

// ParseFilter validates raw filter input. An empty string means All.
func ParseFilter(raw string) (Filter, error) {
	if raw == "" || raw == string(FilterAll) {
		return FilterAll, nil
	}
	if !domain.Category(raw).Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, raw)
	}
	return Filter(raw), nil
}

// Store defines read access to the fixed product catalog.
// Every returned product is a copy.
type Store interface {
	All() []domain.Product
	ByCategory(filter Filter) []domain.Product
	RelatedTo(product domain.Product, limit int) []domain.Product
	ByID(id int) (domain.Product, error)
	Featured() (domain.Product, bool)
	HomeMedia() domain.HomeMedia
	Timeline() []domain.TimelineEvent
}

type store struct {
	products []domain.Product
	byID     map[int]int
	media    domain.HomeMedia
	timeline []domain.TimelineEvent
}

// NewStore creates a Store over the built-in catalog
func NewStore() Store {
	s, err := NewStoreFrom(seedProducts)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in catalog: %v", err))
	}
	return s
}

// NewStoreFrom builds a Store over products, validating each record and
// rejecting duplicate IDs. The input slice is copied.
func NewStoreFrom(products []domain.Product) (Store, error) {
	s := &store{
		products: make([]domain.Product, 0, len(products)),
		byID:     make(map[int]int, len(products)),
		media:    homeMedia,
		timeline: timeline,
	}

	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := s.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		s.byID[p.ID] = len(s.products)
		s.products = append(s.products, p.Clone())
	}

	return s, nil
}

// All returns the full catalog in insertion order
func (s *store) All() []domain.Product {
	return s.filter(func(domain.Product) bool { return true }, -1)
}

// ByCategory returns the products matching filter in catalog order.
// FilterAll returns the full catalog.
func (s *store) ByCategory(filter Filter) []domain.Product {
	if filter == FilterAll {
		return s.All()
	}
	return s.filter(func(p domain.Product) bool {
		return p.Category == domain.Category(filter)
	}, -1)
}

// RelatedTo returns up to limit other products in the same category.
// A negative limit is treated as zero.
func (s *store) RelatedTo(product domain.Product, limit int) []domain.Product {
	if limit < 0 {
		limit = 0
	}
	return s.filter(func(p domain.Product) bool {
		return p.ID != product.ID && p.Category == product.Category
	}, limit)
}

func (s *store) ByID(id int) (domain.Product, error) {
	idx, ok := s.byID[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
	}
	return s.products[idx].Clone(), nil
}

// Featured returns the first watch in the catalog, used by the catalog hero
func (s *store) Featured() (domain.Product, bool) {
	for _, p := range s.products {
		if p.Category == domain.CategoryWatches {
			return p.Clone(), true
		}
	}
	return domain.Product{}, false
}

func (s *store) HomeMedia() domain.HomeMedia {
	m := s.media
	m.ScrollImages = append([]string(nil), m.ScrollImages...)
	m.GalleryImages = append([]string(nil), m.GalleryImages...)
	m.CarouselImages = append([]string(nil), m.CarouselImages...)
	m.CTAImages = append([]string(nil), m.CTAImages...)
	return m
}

func (s *store) Timeline() []domain.TimelineEvent {
	return append([]domain.TimelineEvent(nil), s.timeline...)
}

// filter collects matching products in order, stopping at limit when limit >= 0
func (s *store) filter(match func(domain.Product) bool, limit int) []domain.Product {
	out := make([]domain.Product, 0)
	for _, p := range s.products {
		if limit >= 0 && len(out) >= limit {
			break
		}
		if match(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}
