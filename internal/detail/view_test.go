package detail

import (
	"testing"
	"time"

	"layers-storefront/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var watch = domain.Product{
	ID:       1,
	Name:     "Anarc Zenith Smartwatch",
	Category: domain.CategoryWatches,
	Images: []string{
		"/anarc-watch-black1.png",
		"/anarc-watch-close-up-1.png",
		"/product-frost-blaze.png",
	},
	ColorOptions: []domain.ColorOption{
		{Name: "Midnight Black", Swatch: "#1C1C1C", Image: "/anarc-watch-black1.png"},
		{Name: "Silver Mist", Swatch: "#C0C0C0", Image: "/product-frost-blaze.png"},
	},
}

var laptopSkin = domain.Product{
	ID:       3,
	Name:     "Carbon Fiber Laptop Skin",
	Category: domain.CategorySkins,
	Images:   []string{"/laptop-skin-carbon.png", "/laptop-skin-carbon-close1.png"},
}

func TestNewInitialisesFromProduct(t *testing.T) {
	v := New(watch)
	defer v.Close()

	s := v.State()
	assert.Equal(t, 1, s.ProductID)
	assert.Equal(t, watch.Images[0], s.SelectedImage)
	require.NotNil(t, s.SelectedColor)
	assert.Equal(t, "Midnight Black", s.SelectedColor.Name)
	assert.False(t, s.AddedToCart)
}

func TestPickColorSwapsImageThenRemountResets(t *testing.T) {
	v := New(watch)
	defer v.Close()

	require.True(t, v.PickColor("Silver Mist"))
	s := v.State()
	assert.Equal(t, "/product-frost-blaze.png", s.SelectedImage)
	assert.Equal(t, "Silver Mist", s.SelectedColor.Name)

	v.Mount(laptopSkin)
	s = v.State()
	assert.Equal(t, 3, s.ProductID)
	assert.Nil(t, s.SelectedColor)
	assert.Equal(t, laptopSkin.Images[0], s.SelectedImage)
}

func TestMountSameProductKeepsState(t *testing.T) {
	v := New(watch)
	defer v.Close()

	require.True(t, v.PickImage(watch.Images[1]))
	v.Mount(watch)
	assert.Equal(t, watch.Images[1], v.State().SelectedImage)
}

func TestPickImageIgnoresForeignReferences(t *testing.T) {
	v := New(laptopSkin)
	defer v.Close()

	assert.False(t, v.PickImage("/anarc-watch-black1.png"))
	assert.Equal(t, laptopSkin.Images[0], v.State().SelectedImage)

	assert.True(t, v.PickImage(laptopSkin.Images[1]))
	assert.Equal(t, laptopSkin.Images[1], v.State().SelectedImage)
}

func TestPickColorIgnoresUnknownOptions(t *testing.T) {
	v := New(laptopSkin)
	defer v.Close()

	assert.False(t, v.PickColor("Silver Mist"))
	assert.Nil(t, v.State().SelectedColor)
}

// Property: after any valid color pick the main image is the option's image
func TestProperty_ColorAndImageStaySynchronised(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("pickColor sets selectedImage to the option image", prop.ForAll(
		func(imageIdx int, colorIdx int) bool {
			v := New(watch)
			defer v.Close()

			v.PickImage(watch.Images[imageIdx])
			opt := watch.ColorOptions[colorIdx]
			if !v.PickColor(opt.Name) {
				return false
			}
			s := v.State()
			return s.SelectedImage == opt.Image && s.SelectedColor != nil && s.SelectedColor.Name == opt.Name
		},
		gen.IntRange(0, len(watch.Images)-1),
		gen.IntRange(0, len(watch.ColorOptions)-1),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestDefaultCartAckDelay(t *testing.T) {
	v := New(watch)
	defer v.Close()
	assert.Equal(t, 2000*time.Millisecond, v.ackDelay)
}

func TestNonPositiveCartAckDelayKeepsDefault(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		v := New(watch, WithCartAckDelay(d))
		assert.Equal(t, CartAckDelay, v.ackDelay)

		v.AddToCart()
		time.Sleep(20 * time.Millisecond)
		assert.True(t, v.State().AddedToCart, "flag cleared early with delay %s", d)
		v.Close()
	}
}

func TestAddToCartClearsAfterDelay(t *testing.T) {
	v := New(watch, WithCartAckDelay(200*time.Millisecond))
	defer v.Close()

	v.AddToCart()
	assert.True(t, v.State().AddedToCart)

	time.Sleep(100 * time.Millisecond)
	assert.True(t, v.State().AddedToCart, "flag cleared before the delay elapsed")

	assert.Eventually(t, func() bool { return !v.State().AddedToCart }, time.Second, 10*time.Millisecond)
}

func TestAddToCartRestartsTimer(t *testing.T) {
	v := New(watch, WithCartAckDelay(200*time.Millisecond))
	defer v.Close()

	v.AddToCart()
	time.Sleep(120 * time.Millisecond)
	v.AddToCart()

	// The first timer would have fired by now
	time.Sleep(140 * time.Millisecond)
	assert.True(t, v.State().AddedToCart, "superseded timer cleared the flag")

	assert.Eventually(t, func() bool { return !v.State().AddedToCart }, time.Second, 10*time.Millisecond)
}

func TestCloseCancelsPendingTimer(t *testing.T) {
	v := New(watch, WithCartAckDelay(50*time.Millisecond))

	v.AddToCart()
	v.Close()

	time.Sleep(120 * time.Millisecond)
	assert.True(t, v.Closed())
	assert.True(t, v.State().AddedToCart, "timer mutated a closed view")

	v.AddToCart()
	assert.False(t, v.PickImage(watch.Images[1]))
}

func TestRemountClearsCartFlag(t *testing.T) {
	v := New(watch, WithCartAckDelay(time.Minute))
	defer v.Close()

	v.AddToCart()
	v.Mount(laptopSkin)
	assert.False(t, v.State().AddedToCart)
}
