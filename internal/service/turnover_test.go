package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rmorel/rentdesk/internal/database/repository"
)

func insertReservation(t *testing.T, f *repoFixture, status string) repository.Reservation {
	t.Helper()
	res := repository.Reservation{
		ID:         uuid.NewString(),
		PropertyID: f.propertyID,
		GuestName:  "Dana",
		Status:     status,
		Source:     "direct",
		CheckIn:    date(2026, time.September, 4),
		CheckOut:   date(2026, time.September, 8),
		TotalCents: 64000,
	}
	if err := f.reservations.Insert(context.Background(), res); err != nil {
		t.Fatalf("insert reservation: %v", err)
	}
	return res
}

func listTasks(t *testing.T, f *repoFixture, reservationID string) []repository.Task {
	t.Helper()
	tasks, err := f.tasks.List(context.Background(), repository.TaskFilters{ReservationID: reservationID})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	return tasks
}

func TestSyncTasksConfirmedCreatesCheckIn(t *testing.T) {
	ctx := context.Background()
	f := testDB(t)
	res := insertReservation(t, f, repository.ReservationConfirmed)
	turnover := &Turnover{Tasks: f.tasks}

	created, err := turnover.SyncTasks(ctx, res)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if len(created) != 1 || created[0] != repository.TaskTypeCheckIn {
		t.Fatalf("expected one check_in task, got %v", created)
	}

	tasks := listTasks(t, f, res.ID)
	if len(tasks) != 1 {
		t.Fatalf("expected one task, got %d", len(tasks))
	}
	task := tasks[0]
	if task.SLADueAt == nil || !task.SLADueAt.Equal(res.CheckIn.Add(2*time.Hour)) {
		t.Fatalf("check_in SLA should be due 2h after check-in, got %v", task.SLADueAt)
	}
}

func TestSyncTasksDoesNotDuplicateOpenTasks(t *testing.T) {
	ctx := context.Background()
	f := testDB(t)
	res := insertReservation(t, f, repository.ReservationConfirmed)
	turnover := &Turnover{Tasks: f.tasks}

	if _, err := turnover.SyncTasks(ctx, res); err != nil {
		t.Fatalf("first sync: %v", err)
	}
	created, err := turnover.SyncTasks(ctx, res)
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if len(created) != 0 {
		t.Fatalf("resync with an open task must create nothing, got %v", created)
	}
	if tasks := listTasks(t, f, res.ID); len(tasks) != 1 {
		t.Fatalf("expected one task after resync, got %d", len(tasks))
	}
}

func TestSyncTasksFollowsReservationLifecycle(t *testing.T) {
	ctx := context.Background()
	f := testDB(t)
	res := insertReservation(t, f, repository.ReservationConfirmed)
	turnover := &Turnover{Tasks: f.tasks}

	if _, err := turnover.SyncTasks(ctx, res); err != nil {
		t.Fatalf("confirmed sync: %v", err)
	}

	res.Status = repository.ReservationCheckedIn
	created, err := turnover.SyncTasks(ctx, res)
	if err != nil {
		t.Fatalf("checked_in sync: %v", err)
	}
	if len(created) != 1 || created[0] != repository.TaskTypeCheckOut {
		t.Fatalf("expected a check_out task, got %v", created)
	}

	res.Status = repository.ReservationCheckedOut
	created, err = turnover.SyncTasks(ctx, res)
	if err != nil {
		t.Fatalf("checked_out sync: %v", err)
	}
	if len(created) != 1 || created[0] != repository.TaskTypeCleaning {
		t.Fatalf("expected a cleaning task, got %v", created)
	}

	tasks := listTasks(t, f, res.ID)
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks across the lifecycle, got %d", len(tasks))
	}
	cleaning := tasks[len(tasks)-1]
	for _, task := range tasks {
		if task.Type == repository.TaskTypeCleaning {
			cleaning = task
		}
	}
	if cleaning.SLADueAt == nil || !cleaning.SLADueAt.Equal(res.CheckOut.Add(6*time.Hour)) {
		t.Fatalf("cleaning SLA should be due 6h after check-out, got %v", cleaning.SLADueAt)
	}
}

func TestSyncTasksCancelCancelsOpenTasks(t *testing.T) {
	ctx := context.Background()
	f := testDB(t)
	res := insertReservation(t, f, repository.ReservationConfirmed)
	turnover := &Turnover{Tasks: f.tasks}

	if _, err := turnover.SyncTasks(ctx, res); err != nil {
		t.Fatalf("confirmed sync: %v", err)
	}

	res.Status = repository.ReservationCanceled
	created, err := turnover.SyncTasks(ctx, res)
	if err != nil {
		t.Fatalf("cancel sync: %v", err)
	}
	if len(created) != 0 {
		t.Fatalf("cancel must create nothing, got %v", created)
	}

	for _, task := range listTasks(t, f, res.ID) {
		if task.Status != repository.TaskStatusCanceled {
			t.Fatalf("open tasks should be canceled, got %+v", task)
		}
	}
}

func TestSyncTasksPendingDoesNothing(t *testing.T) {
	ctx := context.Background()
	f := testDB(t)
	res := insertReservation(t, f, repository.ReservationPending)
	turnover := &Turnover{Tasks: f.tasks}

	created, err := turnover.SyncTasks(ctx, res)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if len(created) != 0 {
		t.Fatalf("pending reservations get no tasks, got %v", created)
	}
}
