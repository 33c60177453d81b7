package sqlite

import (
	"context"
	"database/sql"

	"carscrape"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ carscrape.DealerStore = (*DealerService)(nil)

// DealerService implements carscrape.DealerStore using SQLite. Rows are
// upserted by dedup key.
type DealerService struct {
	db *DB
}

// NewDealerService creates a new DealerService.
func NewDealerService(db *DB) *DealerService {
	return &DealerService{db: db}
}

// SaveDealer upserts the dealer row and fills in its ID.
func (s *DealerService) SaveDealer(ctx context.Context, d *carscrape.Dealer) error {
	if d == nil {
		return carscrape.Errorf(carscrape.EINVALID, "cannot save a nil dealer")
	}
	if err := d.Validate(); err != nil {
		return err
	}

	key := d.DedupKey()
	var id string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM dealers WHERE dedup_key = ?`, key).Scan(&id)
	if err != nil && err != sql.ErrNoRows {
		return err
	}

	if id == "" {
		d.ID = uuid.New().String()
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO dealers (id, dedup_key, site_host, source_url, name, telephone, email, address)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, d.ID, key, d.SiteHost, d.SourceURL, d.Name, d.Telephone, d.Email, d.Address)
		return err
	}

	d.ID = id
	_, err = s.db.ExecContext(ctx, `
		UPDATE dealers SET site_host = ?, source_url = ?, name = ?, telephone = ?, email = ?, address = ?
		WHERE id = ?
	`, d.SiteHost, d.SourceURL, d.Name, d.Telephone, d.Email, d.Address, id)
	return err
}

// FindDealerByKey retrieves a dealer row by its dedup key.
func (s *DealerService) FindDealerByKey(ctx context.Context, key string) (*carscrape.Dealer, error) {
	var d carscrape.Dealer
	err := s.db.QueryRowContext(ctx, `
		SELECT id, site_host, source_url, name, telephone, email, address
		FROM dealers WHERE dedup_key = ?
	`, key).Scan(&d.ID, &d.SiteHost, &d.SourceURL, &d.Name, &d.Telephone, &d.Email, &d.Address)

	if err == sql.ErrNoRows {
		return nil, carscrape.Errorf(carscrape.ENOTFOUND, "dealer not found")
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// CountDealers returns the number of stored dealer rows.
func (s *DealerService) CountDealers(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM dealers`).Scan(&n)
	return n, err
}
