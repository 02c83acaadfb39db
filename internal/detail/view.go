package detail

import (
	"sync"
	"time"

	"layers-storefront/internal/domain"

	"go.uber.org/zap"
)

// CartAckDelay is how long the "added to cart" acknowledgment stays visible
const CartAckDelay = 2000 * time.Millisecond

// State is a snapshot of the detail page's local presentation state
type State struct {
	ProductID     int                 `json:"product_id"`
	SelectedImage string              `json:"selected_image"`
	SelectedColor *domain.ColorOption `json:"selected_color,omitempty"`
	AddedToCart   bool                `json:"added_to_cart"`
}

// Option configures a View
type Option func(*View)

// WithCartAckDelay overrides CartAckDelay. Non-positive durations are
// ignored.
func WithCartAckDelay(d time.Duration) Option {
	return func(v *View) {
		if d > 0 {
			v.ackDelay = d
		}
	}
}

// WithLogger sets the logger used for view events
func WithLogger(logger *zap.Logger) Option {
	return func(v *View) {
		v.logger = logger
	}
}

// View holds the local state of one mounted product detail page. It owns
// the cart acknowledgment timer and releases it on Close.
type View struct {
	mu sync.Mutex

	product       domain.Product
	selectedImage string
	selectedColor *domain.ColorOption
	addedToCart   bool

	ackDelay  time.Duration
	cartTimer *time.Timer
	// cartGen invalidates callbacks of timers that were stopped too late
	cartGen uint64
	closed  bool

	logger *zap.Logger
}

// New mounts a detail view for product
func New(product domain.Product, opts ...Option) *View {
	v := &View{
		ackDelay: CartAckDelay,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.reset(product)
	return v
}

// Mount binds the view to product. A product with a different ID
// re-initialises all local state; the same ID keeps it.
func (v *View) Mount(product domain.Product) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed || product.ID == v.product.ID {
		return
	}
	v.stopTimerLocked()
	v.reset(product)
}

// Product returns the bound product
func (v *View) Product() domain.Product {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.product.Clone()
}

// State returns a snapshot of the local state
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := State{
		ProductID:     v.product.ID,
		SelectedImage: v.selectedImage,
		AddedToCart:   v.addedToCart,
	}
	if v.selectedColor != nil {
		c := *v.selectedColor
		s.SelectedColor = &c
	}
	return s
}

// PickImage selects a gallery image. References outside the product's
// gallery are ignored and false is returned.
func (v *View) PickImage(ref string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed || !v.product.HasImage(ref) {
		v.logger.Debug("Ignoring image pick", zap.Int("product_id", v.product.ID), zap.String("image", ref))
		return false
	}
	v.selectedImage = ref
	return true
}

// PickColor selects a color option by name and swaps the main image to the
// option's image. Unknown names are ignored.
func (v *View) PickColor(name string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	opt, ok := v.product.ColorOption(name)
	if v.closed || !ok {
		v.logger.Debug("Ignoring color pick", zap.Int("product_id", v.product.ID), zap.String("color", name))
		return false
	}
	v.selectedColor = &opt
	v.selectedImage = opt.Image
	return true
}

// AddToCart raises the acknowledgment flag and schedules it to clear after
// the ack delay. A repeated call restarts the delay.
func (v *View) AddToCart() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return
	}
	v.stopTimerLocked()
	v.addedToCart = true

	gen := v.cartGen
	v.cartTimer = time.AfterFunc(v.ackDelay, func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		if v.closed || gen != v.cartGen {
			return
		}
		v.addedToCart = false
		v.cartTimer = nil
	})
}

// Close tears the view down. Pending timers are cancelled and later calls
// are no-ops.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return
	}
	v.stopTimerLocked()
	v.closed = true
}

// Closed reports whether Close has been called
func (v *View) Closed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.closed
}

func (v *View) reset(product domain.Product) {
	v.product = product.Clone()
	v.selectedImage = v.product.Image
	if len(v.product.Images) > 0 {
		v.selectedImage = v.product.Images[0]
	}
	v.selectedColor = nil
	if len(v.product.ColorOptions) > 0 {
		c := v.product.ColorOptions[0]
		v.selectedColor = &c
	}
	v.addedToCart = false
}

func (v *View) stopTimerLocked() {
	v.cartGen++
	if v.cartTimer != nil {
		v.cartTimer.Stop()
		v.cartTimer = nil
	}
}
