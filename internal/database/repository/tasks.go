package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// TaskFilters defines list filters.
type TaskFilters struct {
	PropertyID    string
	ReservationID string
	Type          string
	Status        string
}

// TaskRepo handles tasks.
type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo { return &TaskRepo{db: db} }

func (r *TaskRepo) Insert(ctx context.Context, t Task) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO tasks(id, property_id, reservation_id, type, title, status, due_at, sla_due_at, completed_at, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);
	`, t.ID, t.PropertyID, t.ReservationID, t.Type, t.Title, t.Status, t.DueAt, t.SLADueAt, t.CompletedAt)
	return err
}

func (r *TaskRepo) UpdateStatus(ctx context.Context, id, status string, completedAt *time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status = ?, completed_at = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		status, completedAt, id)
	return err
}

// OpenByReservationAndType reports whether the reservation already carries
// an open (todo or in_progress) task of the given type.
func (r *TaskRepo) OpenByReservationAndType(ctx context.Context, reservationID, taskType string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
	SELECT COUNT(*) FROM tasks
	WHERE reservation_id = ? AND type = ? AND status IN (?, ?)`,
		reservationID, taskType, TaskStatusTodo, TaskStatusInProgress).Scan(&n)
	return n > 0, err
}

// CancelOpenForReservation cancels all open turnover tasks of a reservation.
func (r *TaskRepo) CancelOpenForReservation(ctx context.Context, reservationID string) error {
	_, err := r.db.ExecContext(ctx, `
	UPDATE tasks SET status = ?, updated_at = CURRENT_TIMESTAMP
	WHERE reservation_id = ? AND status IN (?, ?)`,
		TaskStatusCanceled, reservationID, TaskStatusTodo, TaskStatusInProgress)
	return err
}

func (r *TaskRepo) List(ctx context.Context, f TaskFilters) ([]Task, error) {
	var where []string
	var args []interface{}

	if f.PropertyID != "" {
		where = append(where, "property_id = ?")
		args = append(args, f.PropertyID)
	}
	if f.ReservationID != "" {
		where = append(where, "reservation_id = ?")
		args = append(args, f.ReservationID)
	}
	if f.Type != "" {
		where = append(where, "type = ?")
		args = append(args, f.Type)
	}
	if f.Status != "" {
		where = append(where, "status = ?")
		args = append(args, f.Status)
	}

	query := `SELECT id, property_id, reservation_id, type, title, status, due_at, sla_due_at, completed_at, created_at, updated_at FROM tasks`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY due_at, created_at"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.PropertyID, &t.ReservationID, &t.Type, &t.Title, &t.Status,
			&t.DueAt, &t.SLADueAt, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
