package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// LeaseFilters defines list filters.
type LeaseFilters struct {
	PropertyID string
	Status     string
}

// LeaseRepo handles leases and their charges.
type LeaseRepo struct {
	db *sql.DB
}

func NewLeaseRepo(db *sql.DB) *LeaseRepo { return &LeaseRepo{db: db} }

func (r *LeaseRepo) Insert(ctx context.Context, l Lease) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO leases(id, property_id, tenant_name, status, rent_cents, currency, starts_on, ends_on, first_due_on, schedule_months, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);
	`, l.ID, l.PropertyID, l.TenantName, l.Status, l.RentCents, l.Currency,
		l.StartsOn, l.EndsOn, l.FirstDueOn, l.ScheduleMonths)
	return err
}

func (r *LeaseRepo) Get(ctx context.Context, id string) (Lease, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, property_id, tenant_name, status, rent_cents, currency, starts_on, ends_on, first_due_on, schedule_months, created_at, updated_at
	FROM leases WHERE id = ?`, id)
	return scanLease(row)
}

func (r *LeaseRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE leases SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, status, id)
	return err
}

func (r *LeaseRepo) List(ctx context.Context, f LeaseFilters) ([]Lease, error) {
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

	query := `SELECT id, property_id, tenant_name, status, rent_cents, currency, starts_on, ends_on, first_due_on, schedule_months, created_at, updated_at FROM leases`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY starts_on DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Lease
	for rows.Next() {
		l, err := scanLease(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func scanLease(row rowScanner) (Lease, error) {
	var l Lease
	err := row.Scan(&l.ID, &l.PropertyID, &l.TenantName, &l.Status, &l.RentCents, &l.Currency,
		&l.StartsOn, &l.EndsOn, &l.FirstDueOn, &l.ScheduleMonths, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

// LeaseChargeRepo handles lease charge rows.
type LeaseChargeRepo struct {
	db *sql.DB
}

func NewLeaseChargeRepo(db *sql.DB) *LeaseChargeRepo { return &LeaseChargeRepo{db: db} }

func (r *LeaseChargeRepo) Insert(ctx context.Context, c LeaseCharge) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO lease_charges(id, lease_id, charge_type, amount_cents, status, due_on, created_at)
	VALUES(?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP);
	`, c.ID, c.LeaseID, c.ChargeType, c.AmountCents, c.Status, c.DueOn)
	return err
}

func (r *LeaseChargeRepo) ListByLease(ctx context.Context, leaseID string) ([]LeaseCharge, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, lease_id, charge_type, amount_cents, status, due_on, created_at
	FROM lease_charges WHERE lease_id = ? ORDER BY due_on`, leaseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LeaseCharge
	for rows.Next() {
		var c LeaseCharge
		if err := rows.Scan(&c.ID, &c.LeaseID, &c.ChargeType, &c.AmountCents, &c.Status, &c.DueOn, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ExistingDueDates returns the set of due dates (yyyy-mm-dd) already
// carrying a charge of the given type on the lease.
func (r *LeaseChargeRepo) ExistingDueDates(ctx context.Context, leaseID, chargeType string) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT due_on FROM lease_charges WHERE lease_id = ? AND charge_type = ?`, leaseID, chargeType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var due time.Time
		if err := rows.Scan(&due); err != nil {
			return nil, err
		}
		out[due.Format("2006-01-02")] = true
	}
	return out, rows.Err()
}
