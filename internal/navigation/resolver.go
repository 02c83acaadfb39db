package navigation

import "layers-storefront/internal/domain"

// ResolvedView is the screen to display plus the product it is bound to.
// Product is set only when Kind is ProductDetail.
type ResolvedView struct {
	Kind     domain.ViewID   `json:"kind"`
	Product  *domain.Product `json:"product,omitempty"`
	Fallback bool            `json:"fallback"`
}

// Resolve maps navigation state to the view to display. Detail without a
// product degrades to Catalog, and unknown views degrade to Home.
func Resolve(view domain.ViewID, product *domain.Product) ResolvedView {
	switch view {
	case domain.ViewHome, domain.ViewCatalog, domain.ViewAbout, domain.ViewLogin:
		return ResolvedView{Kind: view}
	case domain.ViewProductDetail:
		if product == nil {
			return ResolvedView{Kind: domain.ViewCatalog, Fallback: true}
		}
		p := product.Clone()
		return ResolvedView{Kind: domain.ViewProductDetail, Product: &p}
	default:
		return ResolvedView{Kind: domain.ViewHome, Fallback: true}
	}
}

// ResolveState is Resolve applied to a state snapshot
func ResolveState(s domain.NavigationState) ResolvedView {
	return Resolve(s.CurrentView, s.SelectedProduct)
}
