package shell

import (
	"errors"
	"fmt"
	"sync"

	"layers-storefront/internal/catalog"
	"layers-storefront/internal/detail"
	"layers-storefront/internal/domain"
	"layers-storefront/internal/metrics"
	"layers-storefront/internal/navigation"

	"go.uber.org/zap"
)

var (
	ErrFilterUnavailable = errors.New("catalog filter is only available on the catalog view")
	ErrNoDetailView      = errors.New("no product detail view is mounted")
	ErrLoginUnavailable  = errors.New("login form is only available on the login view")
	ErrInvalidLoginMode  = errors.New("invalid login mode")
)

// Option configures a Shell
type Option func(*Shell)

// WithLogger sets the shell logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Shell) {
		s.logger = logger
	}
}

// WithDetailOptions passes options to every detail view the shell mounts
func WithDetailOptions(opts ...detail.Option) Option {
	return func(s *Shell) {
		s.detailOpts = append(s.detailOpts, opts...)
	}
}

// Shell mounts a navigation controller, follows its transitions and keeps
// the per-view local state for the view currently on screen.
type Shell struct {
	mu sync.Mutex

	store    catalog.Store
	nav      *navigation.Controller
	state    domain.NavigationState
	resolved navigation.ResolvedView

	detail       *detail.View
	filter       catalog.Filter
	login        LoginForm
	scrollResets int

	detailOpts []detail.Option
	logger     *zap.Logger
}

// New creates a shell showing Home
func New(store catalog.Store, opts ...Option) *Shell {
	s := &Shell{
		store:  store,
		filter: catalog.FilterAll,
		login:  defaultLoginForm(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.nav = navigation.NewController(s.logger)
	s.state = s.nav.State()
	s.resolved = navigation.ResolveState(s.state)
	s.nav.Subscribe(s.onTransition)
	return s
}

// Controller exposes the navigation controller so views can request
// transitions.
func (s *Shell) Controller() *navigation.Controller {
	return s.nav
}

// Navigate shows view
func (s *Shell) Navigate(view domain.ViewID) {
	s.nav.GoTo(view)
}

// OpenProduct shows the detail view for the catalog product with id
func (s *Shell) OpenProduct(id int) error {
	p, err := s.store.ByID(id)
	if err != nil {
		return fmt.Errorf("open product: %w", err)
	}
	s.nav.GoToProductDetail(p)
	return nil
}

// SetFilter applies a catalog page filter
func (s *Shell) SetFilter(f catalog.Filter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resolved.Kind != domain.ViewCatalog {
		return ErrFilterUnavailable
	}
	s.filter = f
	return nil
}

// PickImage forwards to the mounted detail view
func (s *Shell) PickImage(ref string) (bool, error) {
	v, err := s.detailView()
	if err != nil {
		return false, err
	}
	return v.PickImage(ref), nil
}

// PickColor forwards to the mounted detail view
func (s *Shell) PickColor(name string) (bool, error) {
	v, err := s.detailView()
	if err != nil {
		return false, err
	}
	return v.PickColor(name), nil
}

// AddToCart forwards to the mounted detail view
func (s *Shell) AddToCart() error {
	v, err := s.detailView()
	if err != nil {
		return err
	}
	v.AddToCart()
	metrics.CartAcknowledgments.Inc()
	return nil
}

// SetLoginMode switches the login page between sign in and sign up
func (s *Shell) SetLoginMode(mode LoginMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidLoginMode, mode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resolved.Kind != domain.ViewLogin {
		return ErrLoginUnavailable
	}
	s.login.Mode = mode
	return nil
}

// TogglePasswordVisibility flips the login page password mask
func (s *Shell) TogglePasswordVisibility() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resolved.Kind != domain.ViewLogin {
		return ErrLoginUnavailable
	}
	s.login.ShowPassword = !s.login.ShowPassword
	return nil
}

// Render builds the snapshot of what is on screen
func (s *Shell) Render() Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	page := Page{
		View:         s.resolved,
		Navigation:   s.state,
		ScrollResets: s.scrollResets,
	}
	page.View.Product = cloneProduct(s.resolved.Product)
	page.Navigation.SelectedProduct = cloneProduct(s.state.SelectedProduct)

	switch s.resolved.Kind {
	case domain.ViewHome:
		page.Home = &HomePage{Media: s.store.HomeMedia()}
	case domain.ViewCatalog:
		cp := &CatalogPage{
			Filter:   s.filter,
			Filters:  append([]catalog.Filter(nil), catalog.Filters...),
			Products: s.store.ByCategory(s.filter),
		}
		if f, ok := s.store.Featured(); ok {
			cp.Featured = &f
		}
		page.Catalog = cp
	case domain.ViewProductDetail:
		if s.detail != nil {
			p := s.detail.Product()
			page.Detail = &DetailPage{
				Product:   p,
				State:     s.detail.State(),
				Features:  catalog.FeatureContentFor(p.Category),
				TechSpecs: catalog.TechSpecsFor(p.Category),
				Block:     catalog.DetailBlockFor(p.Category),
				Related:   s.store.RelatedTo(p, catalog.DefaultRelatedLimit),
			}
		}
	case domain.ViewAbout:
		page.About = &AboutPage{
			Timeline: s.store.Timeline(),
			CTAImage: s.store.HomeMedia().AboutCTA,
		}
	case domain.ViewLogin:
		page.Login = &LoginPage{Form: s.login}
	}

	return page
}

// ScrollResets returns how many times the shell has scrolled to the origin
func (s *Shell) ScrollResets() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scrollResets
}

// Close tears down the mounted detail view
func (s *Shell) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unmountDetailLocked()
}

func (s *Shell) detailView() (*detail.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.detail == nil {
		return nil, ErrNoDetailView
	}
	return s.detail, nil
}

func (s *Shell) onTransition(t navigation.Transition) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.resolved
	next := navigation.ResolveState(t.To)

	// Resets follow the resolved view, not the requested one
	entered := next.Kind != prev.Kind
	if entered || productChanged(prev, next) {
		s.scrollResets++
	}

	switch next.Kind {
	case domain.ViewProductDetail:
		if s.detail == nil {
			s.detail = detail.New(*next.Product, append([]detail.Option{detail.WithLogger(s.logger)}, s.detailOpts...)...)
		} else {
			s.detail.Mount(*next.Product)
		}
	default:
		s.unmountDetailLocked()
	}

	if entered && next.Kind == domain.ViewCatalog {
		s.filter = catalog.FilterAll
	}
	if entered && next.Kind == domain.ViewLogin {
		s.login = defaultLoginForm()
	}

	s.state = t.To
	s.resolved = next

	metrics.NavigationTransitions.WithLabelValues(string(next.Kind)).Inc()
	if next.Fallback {
		requested := string(t.To.CurrentView)
		if !t.To.CurrentView.Valid() {
			requested = "unknown"
		}
		metrics.ResolverFallbacks.WithLabelValues(requested, string(next.Kind)).Inc()
		s.logger.Warn("View resolved to fallback",
			zap.String("requested", string(t.To.CurrentView)),
			zap.String("resolved", string(next.Kind)),
		)
	}
}

func (s *Shell) unmountDetailLocked() {
	if s.detail != nil {
		s.detail.Close()
		s.detail = nil
	}
}

func productChanged(prev, next navigation.ResolvedView) bool {
	if prev.Product == nil || next.Product == nil {
		return false
	}
	return prev.Product.ID != next.Product.ID
}

func cloneProduct(p *domain.Product) *domain.Product {
	if p == nil {
		return nil
	}
	c := p.Clone()
	return &c
}
