package goquery

import "carscrape"

// baseTemplate provides the template name and ENOTIMPLEMENTED defaults
// for the optional capabilities. Concrete templates embed it and
// override the operations they support.
type baseTemplate struct {
	name string
}

func (b baseTemplate) Name() string {
	return b.name
}

func (b baseTemplate) ListingURLs(string, string) ([]string, error) {
	return nil, carscrape.Errorf(carscrape.ENOTIMPLEMENTED, "template %s does not extract listing URLs", b.name)
}

func (b baseTemplate) NextPage(string, string) (string, error) {
	return "", carscrape.Errorf(carscrape.ENOTIMPLEMENTED, "template %s does not extract pagination", b.name)
}

func (b baseTemplate) ParseDetail(string, string) (*carscrape.ParsedRecord, error) {
	return nil, carscrape.Errorf(carscrape.ENOTIMPLEMENTED, "template %s does not parse detail pages", b.name)
}
