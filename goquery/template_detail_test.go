package goquery_test

import (
	"testing"

	"carscrape"
	"carscrape/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hybridPage = `<html><head>
<script type="application/ld+json">
{"@type":"Vehicle","name":"Ford Fiesta Titanium","brand":{"@type":"Brand","name":"Ford"},
 "model":"Fiesta","offers":{"@type":"Offer","price":"9995","priceCurrency":"GBP"},
 "image":["/img/fiesta-large.jpg"]}
</script></head><body>
<h1>Ford Fiesta</h1>
<table>
<tr><th>Price</th><td>1</td></tr>
<tr><th>Mileage</th><td>42,000 miles</td></tr>
<tr><th>Fuel Type</th><td>Petrol</td></tr>
<tr><th>Transmission</th><td>Manual</td></tr>
</table>
</body></html>`

func TestDetailHybrid_StructuredDataWinsOverTable(t *testing.T) {
	t.Parallel()

	tpl := goquery.NewDetailHybrid()
	require.True(t, tpl.Match(hybridPage, "https://example.com/cars/1"))

	rec, err := tpl.ParseDetail(hybridPage, "https://example.com/cars/1")
	require.NoError(t, err)

	// The table claims price 1; the structured data is authoritative.
	assert.Equal(t, "9995", rec.GetString("price"))
	assert.Equal(t, "GBP", rec.GetString("currency"))
	assert.Equal(t, "Ford", rec.GetString("brand"))
	assert.Equal(t, "Fiesta", rec.GetString("model"))
	assert.Equal(t, carscrape.SourceHybrid, rec.Source)

	specs := rec.Specs()
	require.NotNil(t, specs)
	assert.Equal(t, "42,000 miles", specs["mileage"])
	assert.Equal(t, "42,000 miles", rec.GetString("mileage"))
	assert.Equal(t, "Petrol", rec.GetString("fuel"))
	assert.Equal(t, []string{"https://example.com/img/fiesta-large.jpg"}, rec.GetStrings("images"))
}

func TestDetailHybrid_ParseIsIdempotent(t *testing.T) {
	t.Parallel()

	tpl := goquery.NewDetailHybrid()
	first, err := tpl.ParseDetail(hybridPage, "https://example.com/cars/1")
	require.NoError(t, err)
	second, err := tpl.ParseDetail(hybridPage, "https://example.com/cars/1")
	require.NoError(t, err)

	assert.Equal(t, first.Fields, second.Fields)
	assert.Equal(t, first.FieldCount(), second.FieldCount())
}

func TestDetailHybrid_NoSpecsNoMatch(t *testing.T) {
	t.Parallel()

	page := `<html><head><script type="application/ld+json">{"@type":"Vehicle","name":"A"}</script></head><body></body></html>`
	assert.False(t, goquery.NewDetailHybrid().Match(page, "https://example.com/cars/1"))
}

func TestDetailJSONLD_ParsesVehicleNode(t *testing.T) {
	t.Parallel()

	page := `<html><head><script type="application/ld+json">
{"@context":"https://schema.org","@graph":[
 {"@type":"WebSite","name":"Smith Motors"},
 {"@type":"Car","name":"VW Golf GTI","brand":"Volkswagen","model":"Golf",
  "vehicleIdentificationNumber":"WVWZZZ1KZ5W000001",
  "offers":{"price":18250,"priceCurrency":"GBP"}}
]}</script></head><body></body></html>`

	tpl := goquery.NewDetailJSONLD()
	require.True(t, tpl.Match(page, "https://example.com/vehicle/golf-gti"))

	rec, err := tpl.ParseDetail(page, "https://example.com/vehicle/golf-gti")
	require.NoError(t, err)

	assert.Equal(t, "VW Golf GTI", rec.GetString("name"))
	assert.Equal(t, "Volkswagen", rec.GetString("brand"))
	assert.Equal(t, "WVWZZZ1KZ5W000001", rec.GetString("vin"))
	assert.Equal(t, "18250", rec.GetString("price"))
	assert.Equal(t, carscrape.SourceJSONLD, rec.Source)
	assert.InDelta(t, 1.0, rec.Confidence, 0.001)
}

func TestDetailJSONLD_FallsBackToMicrodata(t *testing.T) {
	t.Parallel()

	// The ld+json block mentions a vehicle but parses to nothing useful,
	// so extraction falls through to the microdata scope.
	page := `<html><head>
<script type="application/ld+json">{"@type":"Vehicle"}</script>
</head><body>
<div itemscope itemtype="https://schema.org/Vehicle">
 <span itemprop="name">BMW 320d M Sport</span>
 <span itemprop="brand">BMW</span>
 <meta itemprop="price" content="15750">
</div>
</body></html>`

	tpl := goquery.NewDetailJSONLD()
	rec, err := tpl.ParseDetail(page, "https://example.com/cars/320d")
	require.NoError(t, err)

	assert.Equal(t, "BMW 320d M Sport", rec.GetString("name"))
	assert.Equal(t, "15750", rec.GetString("price"))
	assert.Equal(t, carscrape.SourceMicrodata, rec.Source)
}

func TestDetailJSONLD_FallsBackToMetaTags(t *testing.T) {
	t.Parallel()

	page := `<html><head>
<script type="application/ld+json">{"@type":"Vehicle"}</script>
<meta property="og:title" content="Audi A3 Sportback">
<meta property="product:price:amount" content="12500">
<meta property="product:price:currency" content="GBP">
</head><body></body></html>`

	tpl := goquery.NewDetailJSONLD()
	rec, err := tpl.ParseDetail(page, "https://example.com/cars/a3")
	require.NoError(t, err)

	assert.Equal(t, "Audi A3 Sportback", rec.GetString("name"))
	assert.Equal(t, "12500", rec.GetString("price"))
	assert.Equal(t, "GBP", rec.GetString("currency"))
	assert.Equal(t, carscrape.SourceMeta, rec.Source)
}

func TestDetailSpecTable_ParsesTableOnlyPage(t *testing.T) {
	t.Parallel()

	page := `<html><head><title>Vauxhall Corsa | Smith Motors</title></head><body>
<h1>Vauxhall Corsa 1.2</h1>
<div class="price">£7,495</div>
<table>
<tr><th>Make</th><td>Vauxhall</td></tr>
<tr><th>Model</th><td>Corsa</td></tr>
<tr><th>Year</th><td>2019</td></tr>
<tr><th>Mileage</th><td>31,204</td></tr>
</table>
</body></html>`

	tpl := goquery.NewDetailSpecTable()
	require.True(t, tpl.Match(page, "https://example.com/stock/corsa-12"))

	rec, err := tpl.ParseDetail(page, "https://example.com/stock/corsa-12")
	require.NoError(t, err)

	assert.Equal(t, "Vauxhall Corsa 1.2", rec.GetString("name"))
	assert.Equal(t, "£7,495", rec.GetString("price"))
	assert.Equal(t, "Vauxhall", rec.GetString("brand"))
	assert.Equal(t, "Corsa", rec.GetString("model"))
	assert.Equal(t, "2019", rec.GetString("year"))
	assert.Equal(t, carscrape.SourceSpecTable, rec.Source)
}

func TestDetailSpecTable_NoHeaderRowsNoMatch(t *testing.T) {
	t.Parallel()

	page := `<html><body><table><tr><td>a</td><td>b</td></tr></table></body></html>`
	assert.False(t, goquery.NewDetailSpecTable().Match(page, "https://example.com/cars/1"))
}

func TestDetailInlineBlocks_ParsesDefinitionList(t *testing.T) {
	t.Parallel()

	page := `<html><body>
<h1>Mini Cooper S</h1>
<div class="price">£11,250</div>
<dl>
 <dt>Fuel</dt><dd>Petrol</dd>
 <dt>Transmission</dt><dd>Automatic</dd>
 <dt>Mileage</dt><dd>18,400</dd>
</dl>
</body></html>`

	tpl := goquery.NewDetailInlineBlocks()
	require.True(t, tpl.Match(page, "https://example.com/cars/cooper-s"))

	rec, err := tpl.ParseDetail(page, "https://example.com/cars/cooper-s")
	require.NoError(t, err)

	assert.Equal(t, "Mini Cooper S", rec.GetString("name"))
	assert.Equal(t, "£11,250", rec.GetString("price"))
	assert.Equal(t, "Petrol", rec.GetString("fuel"))
	assert.Equal(t, "Automatic", rec.GetString("transmission"))
	assert.Equal(t, carscrape.SourceInline, rec.Source)
}

func TestDetailInlineBlocks_LabelValuePairs(t *testing.T) {
	t.Parallel()

	page := `<html><body>
<h1>Skoda Octavia</h1>
<div class="spec-row"><span class="label">Year</span><span class="value">2021</span></div>
<div class="spec-row"><span class="label">Fuel</span><span class="value">Diesel</span></div>
</body></html>`

	tpl := goquery.NewDetailInlineBlocks()
	rec, err := tpl.ParseDetail(page, "https://example.com/cars/octavia")
	require.NoError(t, err)

	assert.Equal(t, "2021", rec.GetString("year"))
	assert.Equal(t, "Diesel", rec.GetString("fuel"))
}

func TestDetailTemplates_RejectMalformedPageURL(t *testing.T) {
	t.Parallel()

	_, err := goquery.NewDetailJSONLD().ParseDetail("<html></html>", "://not-a-url")
	require.Error(t, err)
	assert.Equal(t, carscrape.EINVALID, carscrape.ErrorCode(err))
}
