package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// ReservationFilters defines list filters.
type ReservationFilters struct {
	PropertyID string
	Status     string
}

// ReservationRepo handles reservations.
type ReservationRepo struct {
	db *sql.DB
}

func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

func (r *ReservationRepo) Insert(ctx context.Context, res Reservation) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO reservations(id, property_id, guest_name, status, source, check_in, check_out, total_cents, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);
	`, res.ID, res.PropertyID, res.GuestName, res.Status, res.Source, res.CheckIn, res.CheckOut, res.TotalCents)
	return err
}

func (r *ReservationRepo) Get(ctx context.Context, id string) (Reservation, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, property_id, guest_name, status, source, check_in, check_out, total_cents, created_at, updated_at
	FROM reservations WHERE id = ?`, id)
	return scanReservation(row)
}

func (r *ReservationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE reservations SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, status, id)
	return err
}

// HasOverlap reports whether another non-canceled reservation on the same
// property intersects the [checkIn, checkOut) range.
func (r *ReservationRepo) HasOverlap(ctx context.Context, propertyID string, checkIn, checkOut time.Time, excludeID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
	SELECT COUNT(*) FROM reservations
	WHERE property_id = ? AND id != ? AND status != ?
	  AND check_in < ? AND check_out > ?`,
		propertyID, excludeID, ReservationCanceled, checkOut, checkIn).Scan(&n)
	return n > 0, err
}

func (r *ReservationRepo) List(ctx context.Context, f ReservationFilters) ([]Reservation, error) {
	var where []string
	var args []interface{}

	if f.PropertyID != "" {
		where = append(where, "property_id = ?")
		args = append(args, f.PropertyID)
	}
	if f.Status != "" {
		where = append(where, "status = ?")
		args = append(args, f.Status)
	}

	query := `SELECT id, property_id, guest_name, status, source, check_in, check_out, total_cents, created_at, updated_at FROM reservations`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY check_in"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func scanReservation(row rowScanner) (Reservation, error) {
	var res Reservation
	err := row.Scan(&res.ID, &res.PropertyID, &res.GuestName, &res.Status, &res.Source,
		&res.CheckIn, &res.CheckOut, &res.TotalCents, &res.CreatedAt, &res.UpdatedAt)
	return res, err
}
