package catalog

import "layers-storefront/internal/domain"

var featureContent = map[domain.Category]domain.FeatureContent{
	domain.CategoryWatches: {
		Section1: domain.FeatureSection{
			Title:       "Precision Milled Body",
			Description: "Every curve and edge is crafted from a single block of aerospace-grade material for ultimate durability and a seamless, premium finish that feels as good as it looks.",
		},
		Section2: domain.FeatureSection{
			Title:       "Brilliance on Display",
			Description: "Our custom display technology provides unparalleled brightness and color accuracy. See every detail with perfect clarity, even in direct sunlight.",
		},
	},
	domain.CategorySkins: {
		Section1: domain.FeatureSection{
			Title:       "Unmatched Precision",
			Description: "Every skin is laser-cut to perfection, ensuring a flawless fit around every port, button, and curve of your device. Application is simple and bubble-free.",
		},
		Section2: domain.FeatureSection{
			Title:       "Authentic 3M Materials",
			Description: "We use only the highest-grade 3M vinyl, offering superior texture, durability, and a clean, residue-free removal when you're ready for a new look.",
		},
	},
	domain.CategoryAccessories: {
		Section1: domain.FeatureSection{
			Title:       "Built to Last",
			Description: "Our accessories are designed with durability in mind, using high-quality materials like liquid silicone and reinforced connectors to withstand daily wear and tear.",
		},
		Section2: domain.FeatureSection{
			Title:       "Seamless Integration",
			Description: "Each accessory is crafted to perfectly complement your device, ensuring a secure fit and maintaining the original aesthetic and functionality you love.",
		},
	},
}

var defaultFeatureContent = domain.FeatureContent{
	Section1: domain.FeatureSection{Title: "Premium Quality", Description: "Crafted with the finest materials available."},
	Section2: domain.FeatureSection{Title: "Designed for You", Description: "Meticulously designed to integrate perfectly with your lifestyle."},
}

var techSpecs = map[domain.Category][]domain.TechSpec{
	domain.CategoryWatches: {
		{Name: "Display", Value: `1.9" AMOLED Always-On`, Icon: "maximize"},
		{Name: "Materials", Value: "Titanium Case, Sapphire Glass", Icon: "shield-check"},
		{Name: "Connectivity", Value: "Bluetooth 5.2, Dual-Band GPS", Icon: "zap"},
		{Name: "Battery Life", Value: "Up to 14 Days", Icon: "battery-charging"},
		{Name: "Water Resistance", Value: "5 ATM", Icon: "droplets"},
		{Name: "Processor", Value: "Anarc Fusion Chip", Icon: "cpu"},
	},
	domain.CategorySkins: {
		{Name: "Material", Value: "Premium 3M Vinyl", Icon: "film"},
		{Name: "Finish", Value: "Matte with True Texture", Icon: "layers"},
		{Name: "Feature", Value: "Air-Release Adhesive", Icon: "wind"},
		{Name: "Durability", Value: "Scratch & Fade Resistant", Icon: "shield-check"},
		{Name: "Removal", Value: "Residue-Free", Icon: "trash"},
		{Name: "Precision", Value: "Laser Cut Accuracy", Icon: "ruler"},
	},
	domain.CategoryAccessories: {
		{Name: "Material", Value: "Liquid Silicone Rubber", Icon: "droplets"},
		{Name: "Clasp", Value: "Stainless Steel Pin-and-Tuck", Icon: "lock"},
		{Name: "Compatibility", Value: "22mm Lug Width", Icon: "cpu"},
		{Name: "Feature", Value: "Sweat & Water Resistant", Icon: "shield-check"},
		{Name: "Design", Value: "Quick-Release Pins", Icon: "zap"},
		{Name: "Sizing", Value: "Fits 140-220mm wrists", Icon: "ruler"},
	},
}

var detailBlocks = map[domain.Category]domain.DetailBlock{
	domain.CategoryWatches: {Kind: "color_picker", Title: "Color"},
	domain.CategorySkins: {
		Kind:  "material",
		Title: "Material",
		Body:  "Premium 3M Vinyl with Air-Release Technology for a bubble-free application.",
	},
	domain.CategoryAccessories: {
		Kind:  "compatibility",
		Title: "Compatibility",
		Body:  "Compatible with Anarc Zenith and other 22mm lug width smartwatches.",
	},
}

// FeatureContentFor returns the feature sections for a category, or the
// generic copy when the category has no entry.
func FeatureContentFor(c domain.Category) domain.FeatureContent {
	if fc, ok := featureContent[c]; ok {
		return fc
	}
	return defaultFeatureContent
}

// TechSpecsFor returns a copy of the specs table for c. Unknown categories
// get an empty table.
func TechSpecsFor(c domain.Category) []domain.TechSpec {
	return append([]domain.TechSpec{}, techSpecs[c]...)
}

// DetailBlockFor returns the category panel, with Kind "none" as the default.
func DetailBlockFor(c domain.Category) domain.DetailBlock {
	if b, ok := detailBlocks[c]; ok {
		return b
	}
	return domain.DetailBlock{Kind: "none"}
}
