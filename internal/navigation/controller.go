package navigation

import (
	"sync"

	"layers-storefront/internal/domain"

	"go.uber.org/zap"
)

// Transition describes one applied navigation change
type Transition struct {
	From domain.NavigationState
	To   domain.NavigationState
}

// ViewChanged reports whether the transition moved to a different view
func (t Transition) ViewChanged() bool {
	return t.From.CurrentView != t.To.CurrentView
}

// Listener is notified after every transition, in the order transitions
// were issued. Listeners may call State but must not issue transitions.
type Listener func(Transition)

// Controller is the single writer of a session's NavigationState
type Controller struct {
	// notifyMu orders mutation plus notification; mu guards state only so
	// listeners can read it.
	notifyMu  sync.Mutex
	mu        sync.RWMutex
	view      domain.ViewID
	product   *domain.Product
	listeners []Listener
	logger    *zap.Logger
}

// NewController creates a controller at Home with no selected product
func NewController(logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		view:   domain.ViewHome,
		logger: logger,
	}
}

// Subscribe registers a listener for subsequent transitions
func (c *Controller) Subscribe(l Listener) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	c.listeners = append(c.listeners, l)
}

// State returns a snapshot of the navigation state
func (c *Controller) State() domain.NavigationState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

// GoTo sets the current view. Unknown identifiers are stored as given and
// resolved to Home by Resolve.
func (c *Controller) GoTo(view domain.ViewID) {
	c.apply(func() {
		c.view = view
	})
}

// SelectProduct binds the product without changing the view
func (c *Controller) SelectProduct(product domain.Product) {
	p := product.Clone()
	c.apply(func() {
		c.product = &p
	})
}

// GoToProductDetail selects product and shows the detail view as one step
func (c *Controller) GoToProductDetail(product domain.Product) {
	p := product.Clone()
	c.apply(func() {
		c.product = &p
		c.view = domain.ViewProductDetail
	})
}

func (c *Controller) apply(mutate func()) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	from := c.snapshotLocked()
	mutate()
	to := c.snapshotLocked()
	c.mu.Unlock()

	t := Transition{From: from, To: to}
	c.logger.Debug("Navigation transition",
		zap.String("from", string(from.CurrentView)),
		zap.String("to", string(to.CurrentView)),
		zap.Bool("view_changed", t.ViewChanged()),
		zap.Bool("product_selected", to.SelectedProduct != nil),
	)

	for _, l := range c.listeners {
		l(t)
	}
}

func (c *Controller) snapshotLocked() domain.NavigationState {
	s := domain.NavigationState{CurrentView: c.view}
	if c.product != nil {
		p := c.product.Clone()
		s.SelectedProduct = &p
	}
	return s
}
