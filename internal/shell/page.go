package shell

import (
	"layers-storefront/internal/catalog"
	"layers-storefront/internal/detail"
	"layers-storefront/internal/domain"
	"layers-storefront/internal/navigation"
)

// LoginMode toggles the login page between its two forms
type LoginMode string

const (
	LoginModeSignIn LoginMode = "login"
	LoginModeSignUp LoginMode = "signup"
)

// Valid reports whether m is a known login mode
func (m LoginMode) Valid() bool {
	return m == LoginModeSignIn || m == LoginModeSignUp
}

// LoginForm is the local state of the login page
type LoginForm struct {
	Mode         LoginMode `json:"mode"`
	ShowPassword bool      `json:"show_password"`
}

func defaultLoginForm() LoginForm {
	return LoginForm{Mode: LoginModeSignIn}
}

// Page is the read-only snapshot handed to the display surface. Exactly
// one of the view payloads is set, matching View.Kind.
type Page struct {
	View         navigation.ResolvedView `json:"view"`
	Navigation   domain.NavigationState  `json:"navigation"`
	ScrollResets int                     `json:"scroll_resets"`

	Home    *HomePage    `json:"home,omitempty"`
	Catalog *CatalogPage `json:"catalog,omitempty"`
	Detail  *DetailPage  `json:"detail,omitempty"`
	About   *AboutPage   `json:"about,omitempty"`
	Login   *LoginPage   `json:"login,omitempty"`
}

type HomePage struct {
	Media domain.HomeMedia `json:"media"`
}

type CatalogPage struct {
	Filter   catalog.Filter   `json:"filter"`
	Filters  []catalog.Filter `json:"filters"`
	Products []domain.Product `json:"products"`
	Featured *domain.Product  `json:"featured,omitempty"`
}

type DetailPage struct {
	Product   domain.Product        `json:"product"`
	State     detail.State          `json:"state"`
	Features  domain.FeatureContent `json:"features"`
	TechSpecs []domain.TechSpec     `json:"tech_specs"`
	Block     domain.DetailBlock    `json:"block"`
	Related   []domain.Product      `json:"related"`
}

type AboutPage struct {
	Timeline []domain.TimelineEvent `json:"timeline"`
	CTAImage string                 `json:"cta_image"`
}

type LoginPage struct {
	Form LoginForm `json:"form"`
}
