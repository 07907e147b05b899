package service

import (
	"testing"
	"time"

	"github.com/rmorel/rentdesk/internal/database/repository"
)

func TestSummarizeCountsOpenTasksAndTurnovers(t *testing.T) {
	start := date(2026, time.August, 1)
	end := date(2026, time.September, 1)
	now := date(2026, time.August, 20)

	doneAt := date(2026, time.August, 10)
	lateSLA := date(2026, time.August, 5)
	futureSLA := date(2026, time.August, 25)
	outsideDone := date(2026, time.July, 2)

	tasks := []repository.Task{
		// completed turnover inside the period
		{Type: repository.TaskTypeCleaning, Status: repository.TaskStatusDone, CompletedAt: &doneAt, SLADueAt: &futureSLA},
		// completed turnover outside the period
		{Type: repository.TaskTypeCheckIn, Status: repository.TaskStatusDone, CompletedAt: &outsideDone},
		// open task already past its SLA
		{Type: repository.TaskTypeCheckOut, Status: repository.TaskStatusTodo, SLADueAt: &lateSLA},
		// open task within its SLA
		{Type: repository.TaskTypeCustom, Status: repository.TaskStatusInProgress, SLADueAt: &futureSLA},
		// canceled task counts nowhere
		{Type: repository.TaskTypeCleaning, Status: repository.TaskStatusCanceled},
	}

	s := Summarize(tasks, nil, start, end, now)
	if s.OpenTasks != 2 {
		t.Fatalf("expected 2 open tasks, got %d", s.OpenTasks)
	}
	if s.TurnoversCompleted != 1 {
		t.Fatalf("expected 1 turnover completed in the period, got %d", s.TurnoversCompleted)
	}
	if s.SLABreaches != 1 {
		t.Fatalf("expected 1 SLA breach, got %d", s.SLABreaches)
	}
}

func TestSummarizeCountsLateCompletionAsBreach(t *testing.T) {
	sla := date(2026, time.August, 5)
	done := date(2026, time.August, 6)
	tasks := []repository.Task{
		{Type: repository.TaskTypeCleaning, Status: repository.TaskStatusDone, CompletedAt: &done, SLADueAt: &sla},
	}
	s := Summarize(tasks, nil, date(2026, time.August, 1), date(2026, time.September, 1), date(2026, time.August, 20))
	if s.SLABreaches != 1 {
		t.Fatalf("late completion should breach, got %d", s.SLABreaches)
	}
}

func TestSummarizeCountsUpcomingStays(t *testing.T) {
	start := date(2026, time.August, 1)
	end := date(2026, time.September, 1)

	reservations := []repository.Reservation{
		{Status: repository.ReservationConfirmed, CheckIn: date(2026, time.August, 10)},
		{Status: repository.ReservationConfirmed, CheckIn: date(2026, time.October, 10)}, // outside
		{Status: repository.ReservationCheckedIn, CheckOut: date(2026, time.August, 12)},
		{Status: repository.ReservationCanceled, CheckIn: date(2026, time.August, 15)},
	}

	s := Summarize(nil, reservations, start, end, start)
	if s.UpcomingCheckIns != 1 {
		t.Fatalf("expected 1 upcoming check-in, got %d", s.UpcomingCheckIns)
	}
	if s.UpcomingCheckOuts != 1 {
		t.Fatalf("expected 1 upcoming check-out, got %d", s.UpcomingCheckOuts)
	}
}
