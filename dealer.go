package carscrape

import "context"

// Dealer is a site-level dealer row. The run coordinator emits at most
// one per site per run.
type Dealer struct {
	ID        string `json:"id"`
	SiteHost  string `json:"siteHost"`
	SourceURL string `json:"sourceUrl"`
	Name      string `json:"name"`
	Telephone string `json:"telephone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
}

// DedupKey returns the key used to deduplicate dealers within a run:
// the (name, telephone) composite when both are present, otherwise the
// source URL. A dealer with only a name or only a telephone falls back
// to the URL key.
func (d *Dealer) DedupKey() string {
	if d.Name != "" && d.Telephone != "" {
		return d.Name + "|" + d.Telephone
	}
	return d.SourceURL
}

// Validate returns an error if the dealer lacks any usable key.
func (d *Dealer) Validate() error {
	if d.DedupKey() == "" {
		return Errorf(EINVALID, "dealer record has no name+telephone and no source URL")
	}
	return nil
}

// DealerStore persists dealer rows, upserting by dedup key.
type DealerStore interface {
	SaveDealer(ctx context.Context, d *Dealer) error
}
