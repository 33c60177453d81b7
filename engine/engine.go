// Package engine coordinates a scraping run: it classifies each saved
// page, dispatches it to the matched template by role, normalizes the
// output and partitions it into vehicle rows, dealer rows, listing URLs
// and pagination edges.
package engine

import (
	"context"
	"log/slog"

	"carscrape"
	"golang.org/x/sync/errgroup"
)

// Expected listing-URL volume used to size the frontier filter.
const defaultFrontierSize = 100_000

// PaginationEdge records that page From links to page To as its next
// results page.
type PaginationEdge struct {
	From string
	To   string
}

// Result is the partitioned output of a run. Every input page
// contributes to exactly one of the partitions.
type Result struct {
	Vehicles     []*carscrape.Vehicle
	Dealers      []*carscrape.Dealer
	ListingURLs  []string
	Pagination   []PaginationEdge
	Unclassified []string
}

// Runner executes a scraping run over saved pages.
type Runner struct {
	detector   carscrape.Detector
	normalizer carscrape.Normalizer

	// Vehicles and Dealers receive normalized rows when set.
	Vehicles carscrape.VehicleStore
	Dealers  carscrape.DealerStore

	// Concurrency caps parallel page processing; values <= 1 run
	// sequentially. Output order is by input order either way.
	Concurrency int

	// Seeds are listing URLs from out-of-band sources such as saved
	// sitemaps. They merge into the result through the same frontier as
	// page-extracted URLs, after all pages.
	Seeds []string

	Logger *slog.Logger
}

// NewRunner creates a Runner over the given detector and normalizer.
func NewRunner(detector carscrape.Detector, normalizer carscrape.Normalizer) *Runner {
	return &Runner{
		detector:   detector,
		normalizer: normalizer,
		Logger:     slog.Default(),
	}
}

// pageOutcome is the classification of a single page before merging.
type pageOutcome struct {
	vehicle      *carscrape.Vehicle
	dealer       *carscrape.Dealer
	listingURLs  []string
	nextPage     string
	unclassified bool
}

// Run processes the pages and returns the partitioned result. Listing
// URLs are deduplicated across the whole run; at most one dealer per
// site host is emitted. Results merge in input order regardless of
// concurrency.
func (r *Runner) Run(ctx context.Context, pages []carscrape.Page) (*Result, error) {
	outcomes := make([]*pageOutcome, len(pages))

	if r.Concurrency > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.Concurrency)
		for i, page := range pages {
			g.Go(func() error {
				outcome, err := r.processPage(gctx, page)
				if err != nil {
					return err
				}
				outcomes[i] = outcome
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, page := range pages {
			outcome, err := r.processPage(ctx, page)
			if err != nil {
				return nil, err
			}
			outcomes[i] = outcome
		}
	}

	return r.merge(ctx, pages, outcomes)
}

// processPage classifies and parses one page. It performs no shared
// mutation; deduplication and persistence happen during the merge.
func (r *Runner) processPage(ctx context.Context, page carscrape.Page) (*pageOutcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	det, err := r.detector.Detect(page.HTML, page.URL)
	if err != nil {
		if carscrape.ErrorCode(err) == carscrape.ENOTFOUND {
			r.logger().Debug("page unclassified", "url", page.URL)
			return &pageOutcome{unclassified: true}, nil
		}
		return nil, err
	}

	tpl := det.Template
	r.logger().Debug("page classified", "url", page.URL, "template", tpl.Name(), "role", tpl.Role())

	switch tpl.Role() {
	case carscrape.RoleDetail:
		return r.detailOutcome(det, page)
	case carscrape.RoleListing, carscrape.RolePagination:
		if det.Record != nil {
			return nil, carscrape.Errorf(carscrape.EINTERNAL,
				"%s detection for %q carries a parsed record", tpl.Role(), page.URL)
		}
		return r.linkOutcome(det, page)
	case carscrape.RoleDealer:
		return r.dealerOutcome(det, page)
	default:
		return nil, carscrape.Errorf(carscrape.EINTERNAL, "template %s has unknown role %q", tpl.Name(), tpl.Role())
	}
}

func (r *Runner) detailOutcome(det *carscrape.Detection, page carscrape.Page) (*pageOutcome, error) {
	rec := det.Record
	if rec == nil {
		parsed, err := det.Template.ParseDetail(page.HTML, page.URL)
		if err != nil {
			return nil, err
		}
		rec = parsed
	}
	vehicle, err := r.normalizer.NormalizeVehicle(rec, page.URL)
	if err != nil {
		return nil, err
	}
	vehicle.Template = det.Template.Name()
	return &pageOutcome{vehicle: vehicle}, nil
}

func (r *Runner) linkOutcome(det *carscrape.Detection, page carscrape.Page) (*pageOutcome, error) {
	outcome := &pageOutcome{}
	caps := det.Template.Capabilities()

	if caps.Has(carscrape.CapListingURLs) {
		urls, err := det.Template.ListingURLs(page.HTML, page.URL)
		if err != nil && carscrape.ErrorCode(err) != carscrape.ENOTIMPLEMENTED {
			return nil, err
		}
		outcome.listingURLs = urls
	}
	if caps.Has(carscrape.CapNextPage) {
		next, err := det.Template.NextPage(page.HTML, page.URL)
		if err != nil && carscrape.ErrorCode(err) != carscrape.ENOTIMPLEMENTED {
			return nil, err
		}
		outcome.nextPage = next
	}
	return outcome, nil
}

func (r *Runner) dealerOutcome(det *carscrape.Detection, page carscrape.Page) (*pageOutcome, error) {
	rec := det.Record
	if rec == nil {
		parsed, err := det.Template.ParseDetail(page.HTML, page.URL)
		if err != nil {
			return nil, err
		}
		rec = parsed
	}
	dealer, err := r.normalizer.NormalizeDealer(rec, page.URL)
	if err != nil {
		if carscrape.ErrorCode(err) == carscrape.EINVALID {
			r.logger().Debug("dealer record unusable", "url", page.URL, "error", err)
			return &pageOutcome{unclassified: true}, nil
		}
		return nil, err
	}
	return &pageOutcome{dealer: dealer}, nil
}

// merge folds per-page outcomes into the run result in input order and
// persists rows to the configured stores.
func (r *Runner) merge(ctx context.Context, pages []carscrape.Page, outcomes []*pageOutcome) (*Result, error) {
	result := &Result{}
	frontier := NewFrontier(defaultFrontierSize)
	dealerHosts := make(map[string]bool)
	dealerKeys := make(map[string]bool)

	for i, outcome := range outcomes {
		page := pages[i]
		switch {
		case outcome.unclassified:
			result.Unclassified = append(result.Unclassified, page.URL)

		case outcome.vehicle != nil:
			if r.Vehicles != nil {
				if err := r.Vehicles.SaveVehicle(ctx, outcome.vehicle); err != nil {
					return nil, err
				}
			}
			result.Vehicles = append(result.Vehicles, outcome.vehicle)

		case outcome.dealer != nil:
			dealer := outcome.dealer
			if dealerHosts[dealer.SiteHost] || dealerKeys[dealer.DedupKey()] {
				r.logger().Debug("duplicate dealer skipped", "host", dealer.SiteHost, "url", page.URL)
				continue
			}
			dealerHosts[dealer.SiteHost] = true
			dealerKeys[dealer.DedupKey()] = true
			if r.Dealers != nil {
				if err := r.Dealers.SaveDealer(ctx, dealer); err != nil {
					return nil, err
				}
			}
			result.Dealers = append(result.Dealers, dealer)

		default:
			for _, u := range outcome.listingURLs {
				if frontier.Add(u) {
					result.ListingURLs = append(result.ListingURLs, u)
				}
			}
			if outcome.nextPage != "" {
				result.Pagination = append(result.Pagination, PaginationEdge{From: page.URL, To: outcome.nextPage})
			}
		}
	}

	for _, u := range r.Seeds {
		if frontier.Add(u) {
			result.ListingURLs = append(result.ListingURLs, u)
		}
	}
	return result, nil
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}
