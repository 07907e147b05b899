package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rmorel/rentdesk/internal/database/repository"
)

// Turnover keeps a reservation's operational tasks in sync with its
// status. Every reservation create and status transition runs SyncTasks.
type Turnover struct {
	Tasks *repository.TaskRepo
}

// SyncTasks ensures the tasks implied by the reservation's current status
// exist, without ever duplicating an open task of the same type. A
// canceled reservation has its open turnover tasks canceled instead.
// Returns the types of tasks created by this call.
func (t *Turnover) SyncTasks(ctx context.Context, res repository.Reservation) ([]string, error) {
	switch res.Status {
	case repository.ReservationConfirmed:
		return t.ensure(ctx, res, repository.TaskTypeCheckIn, "Check-in: "+res.GuestName, res.CheckIn, 2*time.Hour)
	case repository.ReservationCheckedIn:
		return t.ensure(ctx, res, repository.TaskTypeCheckOut, "Check-out: "+res.GuestName, res.CheckOut, 2*time.Hour)
	case repository.ReservationCheckedOut:
		return t.ensure(ctx, res, repository.TaskTypeCleaning, "Turnover cleaning: "+res.GuestName, res.CheckOut, 6*time.Hour)
	case repository.ReservationCanceled:
		return nil, t.Tasks.CancelOpenForReservation(ctx, res.ID)
	default:
		return nil, nil
	}
}

func (t *Turnover) ensure(ctx context.Context, res repository.Reservation, taskType, title string, dueAt time.Time, sla time.Duration) ([]string, error) {
	open, err := t.Tasks.OpenByReservationAndType(ctx, res.ID, taskType)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, nil
	}
	slaDue := dueAt.Add(sla)
	task := repository.Task{
		ID:            uuid.NewString(),
		PropertyID:    res.PropertyID,
		ReservationID: &res.ID,
		Type:          taskType,
		Title:         title,
		Status:        repository.TaskStatusTodo,
		DueAt:         dueAt,
		SLADueAt:      &slaDue,
	}
	if err := t.Tasks.Insert(ctx, task); err != nil {
		return nil, err
	}
	return []string{taskType}, nil
}
