package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rmorel/rentdesk/internal/database/repository"
)

const (
	DefaultScheduleMonths = 12
	MaxScheduleMonths     = 120
)

// ErrInvalidScheduleMonths is returned for a months count below 1.
var ErrInvalidScheduleMonths = errors.New("schedule months must be >= 1")

// MonthlyDueDates expands a lease into its monthly due dates. Dates are
// anchored on firstDue (or startsOn when absent) and advance month by
// month with the day-of-month clamped to shorter months. An end date
// bounds the schedule; otherwise months does (default 12, capped at 120).
// An end date earlier than the anchor still yields one due date so a
// lease never has an empty schedule.
func MonthlyDueDates(startsOn time.Time, firstDue, endsOn *time.Time, months *int) ([]time.Time, error) {
	anchor := startsOn
	if firstDue != nil {
		anchor = *firstDue
	}

	if endsOn != nil {
		end := *endsOn
		var schedule []time.Time
		for offset := 0; offset < MaxScheduleMonths; offset++ {
			due := addMonthsClamped(anchor, offset)
			if due.After(end) {
				break
			}
			schedule = append(schedule, due)
		}
		if len(schedule) > 0 {
			return schedule, nil
		}
		if anchor.Before(startsOn) {
			return []time.Time{startsOn}, nil
		}
		return []time.Time{anchor}, nil
	}

	n := DefaultScheduleMonths
	if months != nil {
		n = *months
	}
	if n < 1 {
		return nil, ErrInvalidScheduleMonths
	}
	if n > MaxScheduleMonths {
		n = MaxScheduleMonths
	}

	out := make([]time.Time, 0, n)
	for offset := 0; offset < n; offset++ {
		out = append(out, addMonthsClamped(anchor, offset))
	}
	return out, nil
}

// addMonthsClamped adds whole months keeping the anchor's day-of-month,
// clamped to the target month's last day. time.AddDate would normalize
// Jan 31 + 1 month into March, which is not what a rent schedule wants.
func addMonthsClamped(anchor time.Time, offset int) time.Time {
	monthIndex := int(anchor.Month()) - 1 + offset
	year := anchor.Year() + monthIndex/12
	month := time.Month(monthIndex%12 + 1)
	day := anchor.Day()
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// LeaseScheduler materializes the monthly rent charges of a lease.
type LeaseScheduler struct {
	Charges *repository.LeaseChargeRepo
}

// EnsureSchedule inserts any monthly_rent charges missing from the
// lease's due-date schedule. It is idempotent; rerunning it creates
// nothing new. Returns how many charges were created.
func (s *LeaseScheduler) EnsureSchedule(ctx context.Context, lease repository.Lease) (int, error) {
	dueDates, err := MonthlyDueDates(lease.StartsOn, lease.FirstDueOn, lease.EndsOn, lease.ScheduleMonths)
	if err != nil {
		return 0, err
	}

	existing, err := s.Charges.ExistingDueDates(ctx, lease.ID, repository.ChargeMonthlyRent)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, due := range dueDates {
		if existing[due.Format("2006-01-02")] {
			continue
		}
		charge := repository.LeaseCharge{
			ID:          uuid.NewString(),
			LeaseID:     lease.ID,
			ChargeType:  repository.ChargeMonthlyRent,
			AmountCents: lease.RentCents,
			Status:      "pending",
			DueOn:       due,
		}
		if err := s.Charges.Insert(ctx, charge); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
