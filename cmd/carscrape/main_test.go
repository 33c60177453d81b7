package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "carscrape/cmd/carscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const detailFixture = `<html><head>
<script type="application/ld+json">
{"@type":"Vehicle","name":"Ford Fiesta Titanium","brand":"Ford","model":"Fiesta",
 "offers":{"price":"8995","priceCurrency":"GBP"}}
</script></head><body><h1>Ford Fiesta</h1></body></html>`

func TestCmdTemplates(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(context.Background(), []string{"templates"}, stdout, stderr)
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "detail_hybrid_json_html")
	assert.Contains(t, out, "dealer_info_jsonld")
	assert.Contains(t, out, "pagination_path")
}

func TestCmdDetect(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "fiesta.html")
	require.NoError(t, os.WriteFile(file, []byte(detailFixture), 0644))

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(context.Background(), []string{"detect", file, "-u", "https://example.com/cars/1"}, stdout, stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "detail_jsonld_vehicle")
	assert.Contains(t, stdout.String(), "Ford Fiesta Titanium")
}

func TestCmdDetect_Unclassified(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "about.html")
	require.NoError(t, os.WriteFile(file, []byte("<html><body><p>hello</p></body></html>"), 0644))

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(context.Background(), []string{"detect", file}, stdout, stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "unclassified")
}

func TestCmdScan(t *testing.T) {
	dir := t.TempDir()
	page := "<!-- saved-from: https://example.com/cars/1 -->\n" + detailFixture
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fiesta.html"), []byte(page), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "about.html"),
		[]byte("<!-- saved-from: https://example.com/about -->\n<html><body><p>hi</p></body></html>"), 0644))

	outDir := t.TempDir()
	t.Setenv("CARSCRAPE_OUT_DIR", outDir)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(context.Background(), []string{"scan", dir, "--no-db"}, stdout, stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "1 vehicles")
	assert.Contains(t, stdout.String(), "1 unclassified")

	_, err = os.Stat(filepath.Join(outDir, "vehicles.csv"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "dealers.csv"))
	assert.NoError(t, err)
}

func TestCmdScan_Sitemap(t *testing.T) {
	dir := t.TempDir()
	sitemap := `<!-- saved-from: https://example.com/sitemap.xml -->
<urlset>
  <url><loc>https://example.com/cars/10001</loc></url>
  <url><loc>https://example.com/cars/10002</loc></url>
  <url><loc>https://example.com/about</loc></url>
</urlset>`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sitemap.xml"), []byte(sitemap), 0644))

	outDir := t.TempDir()
	t.Setenv("CARSCRAPE_OUT_DIR", outDir)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(context.Background(), []string{"scan", dir, "--no-db"}, stdout, stderr)
	require.NoError(t, err)

	// Both detail entries are accepted; the /about entry is not.
	assert.Contains(t, stdout.String(), "2 listing URLs")
}

func TestRun_NoCommand(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(context.Background(), nil, stdout, stderr)
	require.Error(t, err)
}
