package main

import (
	"fmt"
	"path/filepath"

	"carscrape"
	"carscrape/engine"
	"carscrape/etree"
	carxlsx "carscrape/excelize"
	"carscrape/fs"
	"carscrape/normalize"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	pages, err := fs.LoadPages(c.Dir)
	if err != nil {
		return fmt.Errorf("failed to load pages from %q: %w", c.Dir, err)
	}
	seeds, err := sitemapSeeds(c.Dir, deps)
	if err != nil {
		return err
	}
	if len(pages) == 0 && len(seeds) == 0 {
		fmt.Fprintf(deps.Stdout, "No HTML pages found in %s\n", c.Dir)
		return nil
	}

	runner := engine.NewRunner(deps.Detector, normalize.New())
	runner.Vehicles = deps.Vehicles
	runner.Dealers = deps.Dealers
	runner.Logger = deps.Logger
	runner.Seeds = seeds
	runner.Concurrency = deps.Config.Concurrency
	if c.Concurrency > 0 {
		runner.Concurrency = c.Concurrency
	}

	result, err := runner.Run(deps.Ctx, pages)
	if err != nil {
		return fmt.Errorf("scan failed: %s", carscrape.ErrorMessage(err))
	}

	exporter := fs.NewExporter(deps.Config.OutDir)
	if err := exporter.WriteVehicles(result.Vehicles); err != nil {
		return err
	}
	if err := exporter.WriteDealers(result.Dealers); err != nil {
		return err
	}
	if c.XLSX {
		path := filepath.Join(deps.Config.OutDir, "carscrape.xlsx")
		if err := carxlsx.WriteWorkbook(path, result.Vehicles, result.Dealers); err != nil {
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Processed %d pages: %d vehicles, %d dealers, %d listing URLs, %d pagination edges, %d unclassified\n",
		len(pages), len(result.Vehicles), len(result.Dealers),
		len(result.ListingURLs), len(result.Pagination), len(result.Unclassified))

	incomplete := 0
	for _, v := range result.Vehicles {
		if v.Incomplete {
			incomplete++
		}
	}
	if incomplete > 0 {
		fmt.Fprintf(deps.Stdout, "%d vehicle rows lack identity fields and are marked incomplete\n", incomplete)
	}
	return nil
}

// sitemapSeeds extracts listing URLs from saved sitemap.xml files in the
// scan directory. Sitemap index documents are skipped; their children
// are remote and the scan operates on saved files only.
func sitemapSeeds(dir string, deps *Dependencies) ([]string, error) {
	sitemaps, err := fs.LoadSitemaps(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load sitemaps from %q: %w", dir, err)
	}

	var seeds []string
	for _, sm := range sitemaps {
		if etree.IsIndex(sm.XML) {
			children, err := etree.ChildSitemaps(sm.XML)
			if err != nil {
				return nil, err
			}
			deps.Logger.Info("sitemap index skipped; child sitemaps are not fetched",
				"sitemap", sm.URL, "children", len(children))
			continue
		}
		urls, err := etree.ListingURLs(sm.XML, sm.URL, deps.Config)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, urls...)
	}
	return seeds, nil
}
