package goquery_test

import (
	"testing"

	"carscrape"
	"carscrape/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonical_RegistrationOrder(t *testing.T) {
	t.Parallel()

	r := goquery.Canonical(testConfig())
	manifest := r.Manifest()
	require.Len(t, manifest, 12)

	names := make([]string, len(manifest))
	for i, entry := range manifest {
		names[i] = entry.Name
	}
	assert.Equal(t, []string{
		"detail_hybrid_json_html",
		"detail_jsonld_vehicle",
		"detail_inline_html_blocks",
		"detail_html_spec_table",
		"listing_image_grid",
		"listing_card",
		"listing_section",
		"listing_json_api",
		"listing_ajax_infinite",
		"pagination_query",
		"pagination_path",
		"dealer_info_jsonld",
	}, names)
}

func TestCanonical_DetailTemplatesComeFirst(t *testing.T) {
	t.Parallel()

	r := goquery.Canonical(testConfig())
	sawOther := false
	for _, entry := range r.Manifest() {
		if entry.Role != carscrape.RoleDetail {
			sawOther = true
			continue
		}
		assert.False(t, sawOther, "detail template %s registered after a non-detail template", entry.Name)
	}
}

func TestCanonical_HybridWinsRicherPage(t *testing.T) {
	t.Parallel()

	// A page carrying both structured data and a visible spec table is
	// matched by several detail templates; the field-count tie-break must
	// pick the hybrid strategy that merges both.
	page := `<html><head>
<script type="application/ld+json">
{"@type":"Vehicle","name":"Ford Focus ST-Line","brand":"Ford","model":"Focus",
 "offers":{"price":"14995","priceCurrency":"GBP"}}
</script></head><body>
<h1>Ford Focus ST-Line</h1>
<table>
<tr><th>Mileage</th><td>22,000</td></tr>
<tr><th>Fuel</th><td>Petrol</td></tr>
</table>
</body></html>`

	d := carscrape.NewRegistryDetector(goquery.Canonical(testConfig()), carscrape.TieBreakFields)
	det, err := d.Detect(page, "https://example.com/cars/focus-st-line")
	require.NoError(t, err)

	assert.Equal(t, "detail_hybrid_json_html", det.Template.Name())
	require.NotNil(t, det.Record)
	assert.Equal(t, "14995", det.Record.GetString("price"))
	assert.Equal(t, "22,000", det.Record.GetString("mileage"))
}

func TestCanonical_ListingPageClassified(t *testing.T) {
	t.Parallel()

	page := `<html><body>
<div class="vehicle-card"><a href="/cars/101">Fiesta</a></div>
<div class="vehicle-card"><a href="/cars/102">Corsa</a></div>
<div class="pagination"><a class="next" href="/stock?page=2">Next</a></div>
</body></html>`

	d := carscrape.NewRegistryDetector(goquery.Canonical(testConfig()), carscrape.TieBreakFields)
	det, err := d.Detect(page, "https://example.com/stock")
	require.NoError(t, err)

	assert.Equal(t, carscrape.RoleListing, det.Template.Role())
	assert.Nil(t, det.Record)

	urls, err := det.Template.ListingURLs(page, "https://example.com/stock")
	require.NoError(t, err)
	assert.Len(t, urls, 2)

	next, err := det.Template.NextPage(page, "https://example.com/stock")
	require.NoError(t, err)
	assert.Empty(t, next, "card template only follows rel=next links")
}

func TestCanonical_UnclassifiablePage(t *testing.T) {
	t.Parallel()

	page := `<html><body><h1>Opening hours</h1><p>Mon-Sat 9-5</p></body></html>`

	d := carscrape.NewRegistryDetector(goquery.Canonical(testConfig()), carscrape.TieBreakFields)
	_, err := d.Detect(page, "https://example.com/opening-hours")

	require.Error(t, err)
	assert.Equal(t, carscrape.ENOTFOUND, carscrape.ErrorCode(err))
}
