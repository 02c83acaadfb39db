package domain

// ViewID identifies one of the screens the shell can display
type ViewID string

const (
	ViewHome          ViewID = "Home"
	ViewCatalog       ViewID = "Catalog"
	ViewProductDetail ViewID = "ProductDetail"
	ViewAbout         ViewID = "About"
	ViewLogin         ViewID = "Login"
)

// Views lists the closed set of view identifiers
var Views = []ViewID{ViewHome, ViewCatalog, ViewProductDetail, ViewAbout, ViewLogin}

// Valid reports whether v is a known view identifier
func (v ViewID) Valid() bool {
	switch v {
	case ViewHome, ViewCatalog, ViewProductDetail, ViewAbout, ViewLogin:
		return true
	}
	return false
}

// NavigationState is the read-only snapshot of what a session is looking at.
// SelectedProduct may be stale when CurrentView is not ProductDetail.
type NavigationState struct {
	CurrentView     ViewID   `json:"current_view"`
	SelectedProduct *Product `json:"selected_product,omitempty"`
}

// FeatureSection is a titled block of marketing copy
type FeatureSection struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FeatureContent holds the two alternating feature sections of a detail page
type FeatureContent struct {
	Section1 FeatureSection `json:"section1"`
	Section2 FeatureSection `json:"section2"`
}

// TechSpec is a single row of the technical specifications table
type TechSpec struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

// DetailBlock is the category-specific panel next to the buy button.
// Kind is "color_picker" for watches.
type DetailBlock struct {
	Kind  string `json:"kind"`
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
}

// TimelineEvent is one milestone of the brand story
type TimelineEvent struct {
	Year        int    `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// HomeMedia groups the media references used by the landing page
type HomeMedia struct {
	HeroBackground string   `json:"hero_background"`
	HeroWatch      string   `json:"hero_watch"`
	Logo           string   `json:"logo"`
	Cinematic      string   `json:"cinematic"`
	ScrollImages   []string `json:"scroll_images"`
	GalleryImages  []string `json:"gallery_images"`
	ExplodedView   string   `json:"exploded_view"`
	Video          string   `json:"video"`
	BentoGrid      string   `json:"bento_grid"`
	Founder        string   `json:"founder"`
	CarouselImages []string `json:"carousel_images"`
	CTAImages      []string `json:"cta_images"`
	AboutCTA       string   `json:"about_cta"`
}
