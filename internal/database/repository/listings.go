package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// ErrNoCoverImage is returned when publishing a listing without a cover image.
var ErrNoCoverImage = errors.New("listing requires a cover image before publishing")

// PublicFilters narrows the public marketplace listing feed.
type PublicFilters struct {
	City         string
	Neighborhood string
	Query        string
	MinMonthly   int64
	MaxMonthly   int64
	MinMoveIn    int64
	MaxMoveIn    int64
	MinBedrooms  int
	MinBathrooms float64
}

// ListingRepo handles marketplace listings.
type ListingRepo struct {
	db *sql.DB
}

func NewListingRepo(db *sql.DB) *ListingRepo { return &ListingRepo{db: db} }

func (r *ListingRepo) Insert(ctx context.Context, l Listing) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO listings(id, property_id, slug, title, city, neighborhood, cover_image_url, is_published, monthly_cents, move_in_cents, bedrooms, bathrooms, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);
	`, l.ID, l.PropertyID, l.Slug, l.Title, l.City, l.Neighborhood, l.CoverImageURL,
		l.Published, l.MonthlyCents, l.MoveInCents, l.Bedrooms, l.Bathrooms)
	return err
}

func (r *ListingRepo) Get(ctx context.Context, id string) (Listing, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, property_id, slug, title, city, neighborhood, cover_image_url, is_published, monthly_cents, move_in_cents, bedrooms, bathrooms, created_at, updated_at
	FROM listings WHERE id = ?`, id)
	return scanListing(row)
}

// Publish marks a listing public. A cover image is mandatory for the
// public feed, so publishing without one fails.
func (r *ListingRepo) Publish(ctx context.Context, id string) error {
	l, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	if l.CoverImageURL == nil || strings.TrimSpace(*l.CoverImageURL) == "" {
		return ErrNoCoverImage
	}
	_, err = r.db.ExecContext(ctx,
		`UPDATE listings SET is_published = 1, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, id)
	return err
}

func (r *ListingRepo) Unpublish(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE listings SET is_published = 0, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, id)
	return err
}

func (r *ListingRepo) List(ctx context.Context) ([]Listing, error) {
	return r.list(ctx, `SELECT id, property_id, slug, title, city, neighborhood, cover_image_url, is_published, monthly_cents, move_in_cents, bedrooms, bathrooms, created_at, updated_at FROM listings ORDER BY title`)
}

// ListPublic returns published listings matching the marketplace filters.
func (r *ListingRepo) ListPublic(ctx context.Context, f PublicFilters) ([]Listing, error) {
	where := []string{"is_published = 1"}
	var args []interface{}

	if f.City != "" {
		where = append(where, "city = ? COLLATE NOCASE")
		args = append(args, f.City)
	}
	if f.Neighborhood != "" {
		where = append(where, "neighborhood = ? COLLATE NOCASE")
		args = append(args, f.Neighborhood)
	}
	if f.Query != "" {
		where = append(where, "(title LIKE ? OR neighborhood LIKE ? OR city LIKE ?)")
		args = append(args, "%"+f.Query+"%", "%"+f.Query+"%", "%"+f.Query+"%")
	}
	if f.MinMonthly > 0 {
		where = append(where, "monthly_cents >= ?")
		args = append(args, f.MinMonthly)
	}
	if f.MaxMonthly > 0 {
		where = append(where, "monthly_cents <= ?")
		args = append(args, f.MaxMonthly)
	}
	if f.MinMoveIn > 0 {
		where = append(where, "move_in_cents >= ?")
		args = append(args, f.MinMoveIn)
	}
	if f.MaxMoveIn > 0 {
		where = append(where, "move_in_cents <= ?")
		args = append(args, f.MaxMoveIn)
	}
	if f.MinBedrooms > 0 {
		where = append(where, "bedrooms >= ?")
		args = append(args, f.MinBedrooms)
	}
	if f.MinBathrooms > 0 {
		where = append(where, "bathrooms >= ?")
		args = append(args, f.MinBathrooms)
	}

	query := `SELECT id, property_id, slug, title, city, neighborhood, cover_image_url, is_published, monthly_cents, move_in_cents, bedrooms, bathrooms, created_at, updated_at FROM listings WHERE ` +
		strings.Join(where, " AND ") + " ORDER BY monthly_cents"
	return r.list(ctx, query, args...)
}

func (r *ListingRepo) list(ctx context.Context, query string, args ...interface{}) ([]Listing, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func scanListing(row rowScanner) (Listing, error) {
	var l Listing
	err := row.Scan(&l.ID, &l.PropertyID, &l.Slug, &l.Title, &l.City, &l.Neighborhood,
		&l.CoverImageURL, &l.Published, &l.MonthlyCents, &l.MoveInCents,
		&l.Bedrooms, &l.Bathrooms, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}
