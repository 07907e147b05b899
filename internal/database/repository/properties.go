package repository

import (
	"context"
	"database/sql"
)

// PropertyRepo handles properties.
type PropertyRepo struct {
	db *sql.DB
}

func NewPropertyRepo(db *sql.DB) *PropertyRepo { return &PropertyRepo{db: db} }

func (r *PropertyRepo) Insert(ctx context.Context, p Property) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO properties(id, name, address, city, neighborhood, unit_type, bedrooms, bathrooms, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);
	`, p.ID, p.Name, p.Address, p.City, p.Neighborhood, p.UnitType, p.Bedrooms, p.Bathrooms)
	return err
}

func (r *PropertyRepo) Get(ctx context.Context, id string) (Property, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, name, address, city, neighborhood, unit_type, bedrooms, bathrooms, created_at, updated_at
	FROM properties WHERE id = ?`, id)
	return scanProperty(row)
}

func (r *PropertyRepo) List(ctx context.Context) ([]Property, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, address, city, neighborhood, unit_type, bedrooms, bathrooms, created_at, updated_at
	FROM properties ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PropertyRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM properties`).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(row rowScanner) (Property, error) {
	var p Property
	err := row.Scan(&p.ID, &p.Name, &p.Address, &p.City, &p.Neighborhood, &p.UnitType,
		&p.Bedrooms, &p.Bathrooms, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
