// Package fs loads saved HTML pages and sitemaps and writes CSV exports.
package fs

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"carscrape"
)

// Saved pages record their origin in a leading comment:
// <!-- saved-from: https://example.com/cars/1 -->
var savedFromRE = regexp.MustCompile(`<!--\s*saved-from:\s*(\S+)\s*-->`)

// LoadPages reads every .html and .htm file under dir, in lexical path
// order. The page URL comes from the saved-from comment when present,
// otherwise from the file path.
func LoadPages(dir string) ([]carscrape.Page, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".html", ".htm":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	pages := make([]carscrape.Page, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		pages = append(pages, carscrape.Page{
			URL:  pageURL(path, content),
			HTML: string(content),
		})
	}
	return pages, nil
}

// Sitemap is a saved sitemap.xml document with its origin URL.
type Sitemap struct {
	URL string
	XML string
}

// LoadSitemaps reads every .xml file under dir, in lexical path order.
// The sitemap URL comes from the saved-from comment when present,
// otherwise from the file path.
func LoadSitemaps(dir string) ([]Sitemap, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.ToLower(filepath.Ext(path)) == ".xml" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	sitemaps := make([]Sitemap, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sitemaps = append(sitemaps, Sitemap{
			URL: pageURL(path, content),
			XML: string(content),
		})
	}
	return sitemaps, nil
}

// pageURL extracts the origin URL from the head of the file, falling
// back to a file URL.
func pageURL(path string, content []byte) string {
	head := content
	if len(head) > 1024 {
		head = head[:1024]
	}
	if m := savedFromRE.FindSubmatch(head); m != nil {
		return string(m[1])
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return "file://" + filepath.ToSlash(abs)
}
