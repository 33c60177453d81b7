package goquery

import (
	"carscrape"
)

// Canonical returns the registry with every built-in template registered
// in detection order. Detail templates are ordered most to least
// structured, listing templates from the most specific layout to the
// loosest scan, then pagination and dealer.
func Canonical(cfg *carscrape.Config) *carscrape.Registry {
	r := carscrape.NewRegistry()
	r.MustRegister(NewDetailHybrid())
	r.MustRegister(NewDetailJSONLD())
	r.MustRegister(NewDetailInlineBlocks())
	r.MustRegister(NewDetailSpecTable())
	r.MustRegister(NewListingImageGrid(cfg))
	r.MustRegister(NewListingCard(cfg))
	r.MustRegister(NewListingSection(cfg))
	r.MustRegister(NewListingJSONAPI(cfg))
	r.MustRegister(NewListingAjaxInfinite(cfg))
	r.MustRegister(NewPaginationQuery())
	r.MustRegister(NewPaginationPath())
	r.MustRegister(NewDealerInfo())
	return r
}
