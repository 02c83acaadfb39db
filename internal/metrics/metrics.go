package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// NavigationTransitions counts applied transitions by resolved target view
	NavigationTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_navigation_transitions_total",
			Help: "Total number of navigation transitions by resolved view",
		},
		[]string{"view"},
	)

	// ResolverFallbacks counts resolutions that hit a fallback rule
	ResolverFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_resolver_fallbacks_total",
			Help: "Total number of view resolutions that degraded to a fallback view",
		},
		[]string{"requested", "resolved"},
	)

	CartAcknowledgments = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_cart_acknowledgments_total",
			Help: "Total number of add-to-cart acknowledgments shown",
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_active_sessions",
			Help: "Current number of browsing sessions held in memory",
		},
	)
)
