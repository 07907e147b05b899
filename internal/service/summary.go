package service

import (
	"time"

	"github.com/rmorel/rentdesk/internal/database/repository"
)

// OperationsSummary aggregates the turnover workload for a period.
type OperationsSummary struct {
	TurnoversCompleted int
	SLABreaches        int
	OpenTasks          int
	UpcomingCheckIns   int
	UpcomingCheckOuts  int
}

func isTurnoverType(t string) bool {
	switch t {
	case repository.TaskTypeCheckIn, repository.TaskTypeCheckOut, repository.TaskTypeCleaning:
		return true
	}
	return false
}

// Summarize computes the operations summary over the given period. A task
// breaches its SLA when it completed after its SLA due time, or is still
// open with the SLA due time already past.
func Summarize(tasks []repository.Task, reservations []repository.Reservation, periodStart, periodEnd, now time.Time) OperationsSummary {
	var s OperationsSummary

	for _, t := range tasks {
		open := t.Status == repository.TaskStatusTodo || t.Status == repository.TaskStatusInProgress
		if open {
			s.OpenTasks++
		}
		if isTurnoverType(t.Type) && t.Status == repository.TaskStatusDone && t.CompletedAt != nil &&
			!t.CompletedAt.Before(periodStart) && !t.CompletedAt.After(periodEnd) {
			s.TurnoversCompleted++
		}
		if t.SLADueAt == nil {
			continue
		}
		switch {
		case t.CompletedAt != nil && t.CompletedAt.After(*t.SLADueAt):
			s.SLABreaches++
		case open && now.After(*t.SLADueAt):
			s.SLABreaches++
		}
	}

	for _, r := range reservations {
		switch r.Status {
		case repository.ReservationConfirmed:
			if !r.CheckIn.Before(periodStart) && !r.CheckIn.After(periodEnd) {
				s.UpcomingCheckIns++
			}
		case repository.ReservationCheckedIn:
			if !r.CheckOut.Before(periodStart) && !r.CheckOut.After(periodEnd) {
				s.UpcomingCheckOuts++
			}
		}
	}
	return s
}
