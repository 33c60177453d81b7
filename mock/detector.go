package mock

import "carscrape"

var _ carscrape.Detector = (*Detector)(nil)

// Detector is a mock implementation of carscrape.Detector.
type Detector struct {
	DetectFn func(html, pageURL string) (*carscrape.Detection, error)
}

func (d *Detector) Detect(html, pageURL string) (*carscrape.Detection, error) {
	return d.DetectFn(html, pageURL)
}
