package repository

import (
	"context"
	"database/sql"
	"strings"
)

// ExpenseFilters defines list filters.
type ExpenseFilters struct {
	PropertyID string
	Category   string
	Status     string
	Search     string
}

// ExpenseRepo handles expenses.
type ExpenseRepo struct {
	db *sql.DB
}

func NewExpenseRepo(db *sql.DB) *ExpenseRepo { return &ExpenseRepo{db: db} }

func (r *ExpenseRepo) Insert(ctx context.Context, e Expense) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO expenses(id, property_id, category, description, amount_cents, currency, status, incurred_on, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);
	`, e.ID, e.PropertyID, e.Category, e.Description, e.AmountCents, e.Currency, e.Status, e.IncurredOn)
	return err
}

func (r *ExpenseRepo) MarkPaid(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, ExpensePaid, id)
	return err
}

func (r *ExpenseRepo) List(ctx context.Context, f ExpenseFilters) ([]Expense, error) {
	var where []string
	var args []interface{}

	if f.PropertyID != "" {
		where = append(where, "property_id = ?")
		args = append(args, f.PropertyID)
	}
	if f.Category != "" {
		where = append(where, "category = ?")
		args = append(args, f.Category)
	}
	if f.Status != "" {
		where = append(where, "status = ?")
		args = append(args, f.Status)
	}
	if f.Search != "" {
		where = append(where, "description LIKE ?")
		args = append(args, "%"+f.Search+"%")
	}

	query := `SELECT id, property_id, category, description, amount_cents, currency, status, incurred_on, created_at, updated_at FROM expenses`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY incurred_on DESC, created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Expense
	for rows.Next() {
		var e Expense
		if err := rows.Scan(&e.ID, &e.PropertyID, &e.Category, &e.Description, &e.AmountCents,
			&e.Currency, &e.Status, &e.IncurredOn, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
