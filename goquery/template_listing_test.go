package goquery_test

import (
	"testing"

	"carscrape"
	"carscrape/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *carscrape.Config {
	cfg := carscrape.DefaultConfig()
	return &cfg
}

func TestListingImageGrid_AcceptsLinkedImages(t *testing.T) {
	t.Parallel()

	page := `<html><body>
<ul class="grid">
 <li><a href="/cars/101"><img src="/img/101.jpg"></a></li>
 <li><a href="/cars/102"><img src="/img/102.jpg"></a></li>
 <li><a href="/about/cars"><img src="/img/team.jpg"></a></li>
 <li><a href="/cars/101"><img src="/img/101b.jpg"></a></li>
</ul>
</body></html>`

	tpl := goquery.NewListingImageGrid(testConfig())
	require.True(t, tpl.Match(page, "https://example.com/stock"))

	urls, err := tpl.ListingURLs(page, "https://example.com/stock")
	require.NoError(t, err)

	// /about/cars fails the trailing-segment rule; duplicates collapse.
	assert.Equal(t, []string{
		"https://example.com/cars/101",
		"https://example.com/cars/102",
	}, urls)
}

func TestListingImageGrid_IgnoresBareTextLinks(t *testing.T) {
	t.Parallel()

	page := `<html><body>
<ul class="grid"><li><a href="/cars/101">Fiesta</a></li></ul>
</body></html>`

	tpl := goquery.NewListingImageGrid(testConfig())
	assert.False(t, tpl.Match(page, "https://example.com/stock"))
}

func TestListingCard_ResolvesRelativeLinks(t *testing.T) {
	t.Parallel()

	page := `<html><body>
<div class="vehicle-card"><a href="../vehicle/ford-fiesta">Ford Fiesta</a></div>
<div class="vehicle-card"><a href="https://other.example.net/cars/55">Elsewhere</a></div>
<div class="vehicle-card"><a href="tel:01134960000">Call us</a></div>
</body></html>`

	tpl := goquery.NewListingCard(testConfig())
	urls, err := tpl.ListingURLs(page, "https://example.com/stock/page")
	require.NoError(t, err)

	// Foreign hosts need an allow-list entry; tel: links never qualify.
	assert.Equal(t, []string{"https://example.com/vehicle/ford-fiesta"}, urls)
}

func TestListingCard_AllowListedDomain(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.AllowedDomains = []string{"stock.example.net"}

	page := `<html><body>
<div class="vehicle-card"><a href="https://stock.example.net/vehicles/9021">BMW</a></div>
</body></html>`

	urls, err := goquery.NewListingCard(cfg).ListingURLs(page, "https://example.com/stock")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://stock.example.net/vehicles/9021"}, urls)
}

func TestListingSection_ScansSections(t *testing.T) {
	t.Parallel()

	page := `<html><body>
<section>
 <a href="/used-cars/audi-a3-sportback">Audi A3</a>
 <a href="/blog/listing-tips">Buying guide</a>
 <a href="/finance">Finance</a>
</section>
</body></html>`

	tpl := goquery.NewListingSection(testConfig())
	require.True(t, tpl.Match(page, "https://example.com/showroom"))

	urls, err := tpl.ListingURLs(page, "https://example.com/showroom")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/used-cars/audi-a3-sportback"}, urls)
}

func TestListingJSONAPI_WalksEmbeddedPayload(t *testing.T) {
	t.Parallel()

	page := `<html><body>
<script type="application/json">
{"results":[{"url":"/cars/301","title":"Golf"},{"url":"/cars/302","title":"Polo"}],
 "links":{"help":"/contact"}}
</script>
<script>window.__STATE__ = {"items":["/cars/303"]};</script>
</body></html>`

	tpl := goquery.NewListingJSONAPI(testConfig())
	require.True(t, tpl.Match(page, "https://example.com/stock"))

	urls, err := tpl.ListingURLs(page, "https://example.com/stock")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://example.com/cars/301",
		"https://example.com/cars/302",
		"https://example.com/cars/303",
	}, urls)
}

func TestListingJSONAPI_SkipsStructuredDataBlocks(t *testing.T) {
	t.Parallel()

	page := `<html><head>
<script type="application/ld+json">{"@type":"Vehicle","url":"/cars/999"}</script>
</head><body></body></html>`

	tpl := goquery.NewListingJSONAPI(testConfig())
	assert.False(t, tpl.Match(page, "https://example.com/stock"))
}

func TestListingAjaxInfinite_SurfacesLoadMoreEndpoint(t *testing.T) {
	t.Parallel()

	page := `<html><body>
<div class="stock-list">
 <a href="/cars/401">Corsa</a>
 <a href="/cars/402">Astra</a>
</div>
<button class="load-more" data-url="/api/stock?batch=2">Load more</button>
</body></html>`

	tpl := goquery.NewListingAjaxInfinite(testConfig())
	require.True(t, tpl.Match(page, "https://example.com/stock"))

	urls, err := tpl.ListingURLs(page, "https://example.com/stock")
	require.NoError(t, err)
	assert.Len(t, urls, 2)

	next, err := tpl.NextPage(page, "https://example.com/stock")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/api/stock?batch=2", next)
}

func TestListingAjaxInfinite_NoTriggerNoMatch(t *testing.T) {
	t.Parallel()

	page := `<html><body><a href="/cars/401">Corsa</a></body></html>`
	assert.False(t, goquery.NewListingAjaxInfinite(testConfig()).Match(page, "https://example.com/stock"))
}
