package repository

import (
	"context"
	"database/sql"
	"strings"
)

// ApplicationFilters defines list filters.
type ApplicationFilters struct {
	PropertyID string
	Status     string
}

// ApplicationRepo handles rental applications.
type ApplicationRepo struct {
	db *sql.DB
}

func NewApplicationRepo(db *sql.DB) *ApplicationRepo { return &ApplicationRepo{db: db} }

func (r *ApplicationRepo) Insert(ctx context.Context, a Application) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO applications(id, property_id, applicant_name, email, status, monthly_income_cents, submitted_at, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);
	`, a.ID, a.PropertyID, a.ApplicantName, a.Email, a.Status, a.MonthlyIncomeCents, a.SubmittedAt)
	return err
}

func (r *ApplicationRepo) Get(ctx context.Context, id string) (Application, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, property_id, applicant_name, email, status, monthly_income_cents, submitted_at, created_at, updated_at
	FROM applications WHERE id = ?`, id)
	var a Application
	err := row.Scan(&a.ID, &a.PropertyID, &a.ApplicantName, &a.Email, &a.Status,
		&a.MonthlyIncomeCents, &a.SubmittedAt, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE applications SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, status, id)
	return err
}

func (r *ApplicationRepo) List(ctx context.Context, f ApplicationFilters) ([]Application, error) {
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

	query := `SELECT id, property_id, applicant_name, email, status, monthly_income_cents, submitted_at, created_at, updated_at FROM applications`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY submitted_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Application
	for rows.Next() {
		var a Application
		if err := rows.Scan(&a.ID, &a.PropertyID, &a.ApplicantName, &a.Email, &a.Status,
			&a.MonthlyIncomeCents, &a.SubmittedAt, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
