package catalog

import "layers-storefront/internal/domain"

// seedProducts is the fixed product list. Order is the catalog order.
var seedProducts = []domain.Product{
	{
		ID:          1,
		Name:        "Anarc Zenith Smartwatch",
		Description: "The pinnacle of smart technology and timeless design.",
		Price:       4999,
		Category:    domain.CategoryWatches,
		Image:       "/anarc-watch-black1.png",
		Images: []string{
			"/anarc-watch-black1.png",
			"/anarc-watch-close-up-1.png",
			"/anarc-watch-exploded.png",
			"/anarc-watch-close-up-3.png",
			"/anarc-watch-close-up-4.png",
			"/product-frost-blaze.png",
		},
		ColorOptions: []domain.ColorOption{
			{Name: "Midnight Black", Swatch: "#1C1C1C", Image: "/anarc-watch-black1.png"},
			{Name: "Silver Mist", Swatch: "#C0C0C0", Image: "/product-frost-blaze.png"},
		},
		Highlights: []string{
			"AMOLED Always-On Display",
			"Up to 14 Days Battery Life",
			"Customizable Watch Faces",
			"Heart Rate & SpO2 Monitoring",
		},
	},
	{
		ID:          2,
		Name:        "Obsidian Mobile Skin",
		Description: "Crafted from premium 3M vinyl for a sleek, matte black finish.",
		Price:       799,
		Category:    domain.CategorySkins,
		Image:       "/chaotic-mobile.png",
		Images: []string{
			"/chaotic-mobile.png",
			"/chaotic-mobile-close1.png",
			"/chaotic-mobile-close2.png",
			"/chaotic-mobile-close3.png",
			"/chaotic-mobile-close4.png",
		},
	},
	{
		ID:          3,
		Name:        "Carbon Fiber Laptop Skin",
		Description: "A modern, high-tech look with authentic carbon fiber texture.",
		Price:       1499,
		Category:    domain.CategorySkins,
		Image:       "/laptop-skin-carbon.png",
		Images: []string{
			"/laptop-skin-carbon.png",
			"/laptop-skin-carbon-close1.png",
			"/laptop-skin-carbon-close2.png",
			"/laptop-skin-carbon-close3.webp",
			"/laptop-skin-carbon-close4.webp",
		},
	},
	{
		ID:          4,
		Name:        "Cobalt Blue Strap",
		Description: "Durable, comfortable silicone for your Anarc watch.",
		Price:       999,
		Category:    domain.CategoryAccessories,
		Image:       "/anarc-watch-close-up-4.png",
		Images: []string{
			"/anarc-watch-close-up-4.png",
			"/strap-lifestyle-1.png",
			"/strap-lifestyle-2.png",
		},
		Highlights: []string{
			"Sweat & Water Resistant",
			"Quick-Release Pin Design",
			"Ultra Comfort Silicone Material",
		},
	},
}

var homeMedia = domain.HomeMedia{
	HeroBackground: "/anarc-watch-black.png",
	HeroWatch:      "/anarc-watch-black1.png",
	Logo:           "/layers-logo.png",
	Cinematic:      "/anarc-watch-lifestyle.png",
	ScrollImages: []string{
		"/anarc-watch-health1.png",
		"/anarc-watch-gps1.png",
		"/anarc-watch-battery.png",
	},
	GalleryImages: []string{
		"/anarc-watch-close-up-3.png",
		"/anarc-watch-close-up-1.png",
		"/anarc-watch-close-up-4.png",
	},
	ExplodedView: "/anarc-watch-exploded.png",
	Video:        "/anarc-watch-video.mp4",
	BentoGrid:    "/chaotic-mobile.png",
	Founder:      "/founder-main.png",
	CarouselImages: []string{
		"/founder-carousel-1.png",
		"/founder-carousel-2.png",
		"/founder-carousel-3.png",
		"/founder-carousel-4.png",
		"/founder-carousel-5.png",
		"/founder-carousel-6.png",
		"/founder-carousel-7.png",
	},
	CTAImages: []string{
		"/product-dark-brilliance.png",
		"/product-frost-blaze.png",
		"/chaotic-mobile.png",
		"/chaotic-strap.png",
	},
	AboutCTA: "/anarc-watch-black.png",
}

var timeline = []domain.TimelineEvent{
	{Year: 2018, Title: "TechBurner Begins", Description: "Shlok Srivastava starts the TechBurner YouTube channel, driven by a passion for technology."},
	{Year: 2020, Title: "5 Million Strong", Description: "The channel reaches a massive milestone, building a huge community of tech enthusiasts."},
	{Year: 2022, Title: "Layers is Born", Description: "Identifying a need for quality personalization, Layers is launched to bring style to tech."},
	{Year: 2024, Title: "Anarc Launch", Description: "Layers enters the hardware space with the launch of the Anarc smartwatch, combining style and tech."},
}
