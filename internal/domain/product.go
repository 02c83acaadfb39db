package domain

import "fmt"

// Category classifies a product for filtering and content selection
type Category string

const (
	CategoryWatches     Category = "Watches"
	CategorySkins       Category = "Skins"
	CategoryAccessories Category = "Accessories"
)

// Categories lists the closed set of categories in display order
var Categories = []Category{CategoryWatches, CategorySkins, CategoryAccessories}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	switch c {
	case CategoryWatches, CategorySkins, CategoryAccessories:
		return true
	}
	return false
}

// ColorOption is a selectable finish for a product
type ColorOption struct {
	Name   string `json:"name"`
	Swatch string `json:"swatch"`
	Image  string `json:"image"`
}

// Product represents a product in the catalog
type Product struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Price        int           `json:"price"`
	Category     Category      `json:"category"`
	Image        string        `json:"image"`
	Images       []string      `json:"images"`
	ColorOptions []ColorOption `json:"color_options,omitempty"`
	Highlights   []string      `json:"highlights,omitempty"`
}

// Validate checks the structural invariants of a catalog record.
func (p Product) Validate() error {
	if !p.Category.Valid() {
		return fmt.Errorf("product %d: unknown category %q", p.ID, p.Category)
	}
	if len(p.Images) == 0 {
		return fmt.Errorf("product %d: images must not be empty", p.ID)
	}
	if p.ColorOptions == nil {
		return nil
	}
	if p.Category != CategoryWatches {
		return fmt.Errorf("product %d: color options are only offered on %s", p.ID, CategoryWatches)
	}
	if len(p.ColorOptions) == 0 {
		return fmt.Errorf("product %d: color options present but empty", p.ID)
	}
	for _, opt := range p.ColorOptions {
		if !p.HasImage(opt.Image) {
			return fmt.Errorf("product %d: color %q image %q is not in the gallery", p.ID, opt.Name, opt.Image)
		}
	}
	return nil
}

// Clone returns a deep copy so callers cannot mutate shared catalog slices
func (p Product) Clone() Product {
	c := p
	c.Images = append([]string(nil), p.Images...)
	if p.ColorOptions != nil {
		c.ColorOptions = append([]ColorOption(nil), p.ColorOptions...)
	}
	if p.Highlights != nil {
		c.Highlights = append([]string(nil), p.Highlights...)
	}
	return c
}

// HasImage reports whether ref is one of the product's gallery images
func (p Product) HasImage(ref string) bool {
	for _, img := range p.Images {
		if img == ref {
			return true
		}
	}
	return false
}

// ColorOption looks up a color option by name
func (p Product) ColorOption(name string) (ColorOption, bool) {
	for _, opt := range p.ColorOptions {
		if opt.Name == name {
			return opt, true
		}
	}
	return ColorOption{}, false
}
