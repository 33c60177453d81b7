package carscrape

// Page is an already-resident input document: raw HTML plus the URL it
// was fetched or saved from. Loading pages is the caller's concern; the
// engine performs no I/O.
type Page struct {
	URL  string
	HTML string
}
