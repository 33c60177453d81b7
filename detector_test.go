package carscrape_test

import (
	"testing"

	"carscrape"
	"carscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detailTemplate(name string, matches bool, fields map[string]any) *mock.Template {
	return &mock.Template{
		NameFn:  func() string { return name },
		RoleFn:  func() carscrape.Role { return carscrape.RoleDetail },
		MatchFn: func(html, pageURL string) bool { return matches },
		ParseDetailFn: func(html, pageURL string) (*carscrape.ParsedRecord, error) {
			rec := carscrape.NewParsedRecord(carscrape.SourceJSONLD)
			for k, v := range fields {
				rec.Set(k, v)
			}
			return rec, nil
		},
	}
}

func listingTemplate(name string, matches bool) *mock.Template {
	return &mock.Template{
		NameFn:  func() string { return name },
		RoleFn:  func() carscrape.Role { return carscrape.RoleListing },
		MatchFn: func(html, pageURL string) bool { return matches },
	}
}

func TestRegistryDetector_FieldCountTieBreak(t *testing.T) {
	t.Parallel()

	r := carscrape.NewRegistry()
	require.NoError(t, r.Register(detailTemplate("detail_sparse", true, map[string]any{
		"name": "Fiesta",
	})))
	require.NoError(t, r.Register(detailTemplate("detail_rich", true, map[string]any{
		"name":  "Fiesta",
		"brand": "Ford",
		"price": "8995",
	})))

	d := carscrape.NewRegistryDetector(r, carscrape.TieBreakFields)
	det, err := d.Detect("<html></html>", "https://example.com/cars/1")
	require.NoError(t, err)

	assert.Equal(t, "detail_rich", det.Template.Name())
	require.NotNil(t, det.Record)
	assert.Equal(t, 3, det.Record.FieldCount())
}

func TestRegistryDetector_OrderTieBreak(t *testing.T) {
	t.Parallel()

	r := carscrape.NewRegistry()
	require.NoError(t, r.Register(detailTemplate("detail_sparse", true, map[string]any{
		"name": "Fiesta",
	})))
	require.NoError(t, r.Register(detailTemplate("detail_rich", true, map[string]any{
		"name":  "Fiesta",
		"brand": "Ford",
	})))

	d := carscrape.NewRegistryDetector(r, carscrape.TieBreakOrder)
	det, err := d.Detect("<html></html>", "https://example.com/cars/1")
	require.NoError(t, err)

	assert.Equal(t, "detail_sparse", det.Template.Name())
}

func TestRegistryDetector_EqualFieldCountPrefersRegistryOrder(t *testing.T) {
	t.Parallel()

	r := carscrape.NewRegistry()
	require.NoError(t, r.Register(detailTemplate("detail_first", true, map[string]any{"name": "A"})))
	require.NoError(t, r.Register(detailTemplate("detail_second", true, map[string]any{"name": "B"})))

	d := carscrape.NewRegistryDetector(r, carscrape.TieBreakFields)
	det, err := d.Detect("<html></html>", "https://example.com/cars/1")
	require.NoError(t, err)

	assert.Equal(t, "detail_first", det.Template.Name())
}

func TestRegistryDetector_DetailBeatsListing(t *testing.T) {
	t.Parallel()

	// Listing templates registered ahead of detail templates must not
	// shadow a matching detail template: roles are evaluated detail-first.
	r := carscrape.NewRegistry()
	require.NoError(t, r.Register(listingTemplate("listing_card", true)))
	require.NoError(t, r.Register(detailTemplate("detail_jsonld_vehicle", true, map[string]any{"name": "A"})))

	d := carscrape.NewRegistryDetector(r, carscrape.TieBreakFields)
	det, err := d.Detect("<html></html>", "https://example.com/cars/1")
	require.NoError(t, err)

	assert.Equal(t, carscrape.RoleDetail, det.Template.Role())
}

func TestRegistryDetector_ListingDetectionCarriesNoRecord(t *testing.T) {
	t.Parallel()

	r := carscrape.NewRegistry()
	require.NoError(t, r.Register(detailTemplate("detail_jsonld_vehicle", false, nil)))
	require.NoError(t, r.Register(listingTemplate("listing_card", true)))

	d := carscrape.NewRegistryDetector(r, carscrape.TieBreakFields)
	det, err := d.Detect("<html></html>", "https://example.com/cars")
	require.NoError(t, err)

	assert.Equal(t, "listing_card", det.Template.Name())
	assert.Nil(t, det.Record)
}

func TestRegistryDetector_NoMatchReturnsNotFound(t *testing.T) {
	t.Parallel()

	r := carscrape.NewRegistry()
	require.NoError(t, r.Register(detailTemplate("detail_jsonld_vehicle", false, nil)))
	require.NoError(t, r.Register(listingTemplate("listing_card", false)))

	d := carscrape.NewRegistryDetector(r, carscrape.TieBreakFields)
	_, err := d.Detect("<html></html>", "https://example.com/about")

	require.Error(t, err)
	assert.Equal(t, carscrape.ENOTFOUND, carscrape.ErrorCode(err))
}

func TestRegistryDetector_SkipsCandidatesWithoutDetailCapability(t *testing.T) {
	t.Parallel()

	broken := &mock.Template{
		NameFn:  func() string { return "detail_no_parse" },
		RoleFn:  func() carscrape.Role { return carscrape.RoleDetail },
		MatchFn: func(html, pageURL string) bool { return true },
		// ParseDetailFn left nil: the mock returns ENOTIMPLEMENTED.
	}

	r := carscrape.NewRegistry()
	require.NoError(t, r.Register(broken))
	require.NoError(t, r.Register(detailTemplate("detail_jsonld_vehicle", true, map[string]any{"name": "A"})))

	d := carscrape.NewRegistryDetector(r, carscrape.TieBreakFields)
	det, err := d.Detect("<html></html>", "https://example.com/cars/1")
	require.NoError(t, err)

	assert.Equal(t, "detail_jsonld_vehicle", det.Template.Name())
}
