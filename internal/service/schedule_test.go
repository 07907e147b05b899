package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rmorel/rentdesk/internal/database"
	"github.com/rmorel/rentdesk/internal/database/repository"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func intPtr(n int) *int { return &n }

func TestMonthlyDueDatesDefaultsToTwelveMonths(t *testing.T) {
	dates, err := MonthlyDueDates(date(2026, time.March, 5), nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dates) != DefaultScheduleMonths {
		t.Fatalf("expected %d dates, got %d", DefaultScheduleMonths, len(dates))
	}
	if dates[0] != date(2026, time.March, 5) || dates[11] != date(2027, time.February, 5) {
		t.Fatalf("unexpected endpoints: %v .. %v", dates[0], dates[len(dates)-1])
	}
}

func TestMonthlyDueDatesAnchorsOnFirstDue(t *testing.T) {
	dates, err := MonthlyDueDates(date(2026, time.March, 5), datePtr(2026, time.April, 1), nil, intPtr(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []time.Time{date(2026, time.April, 1), date(2026, time.May, 1)}
	if len(dates) != 2 || dates[0] != want[0] || dates[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, dates)
	}
}

func TestMonthlyDueDatesClampsShortMonths(t *testing.T) {
	dates, err := MonthlyDueDates(date(2025, time.January, 31), nil, nil, intPtr(4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []time.Time{
		date(2025, time.January, 31),
		date(2025, time.February, 28),
		date(2025, time.March, 31),
		date(2025, time.April, 30),
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], dates[i])
		}
	}
}

func TestMonthlyDueDatesClampsLeapFebruary(t *testing.T) {
	dates, err := MonthlyDueDates(date(2028, time.January, 30), nil, nil, intPtr(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dates[1] != date(2028, time.February, 29) {
		t.Fatalf("leap February should clamp to the 29th, got %v", dates[1])
	}
}

func TestMonthlyDueDatesBoundedByEndDate(t *testing.T) {
	dates, err := MonthlyDueDates(date(2026, time.January, 1), nil, datePtr(2026, time.March, 15), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dates) != 3 || dates[2] != date(2026, time.March, 1) {
		t.Fatalf("expected Jan-Mar dues, got %v", dates)
	}
}

func TestMonthlyDueDatesEndBeforeAnchorYieldsOneDate(t *testing.T) {
	dates, err := MonthlyDueDates(date(2026, time.June, 1), nil, datePtr(2026, time.January, 1), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dates) != 1 || dates[0] != date(2026, time.June, 1) {
		t.Fatalf("a lease must keep at least one due date, got %v", dates)
	}
}

func TestMonthlyDueDatesRejectsNonPositiveMonths(t *testing.T) {
	if _, err := MonthlyDueDates(date(2026, time.January, 1), nil, nil, intPtr(0)); err != ErrInvalidScheduleMonths {
		t.Fatalf("expected ErrInvalidScheduleMonths, got %v", err)
	}
}

func TestMonthlyDueDatesCapsMonths(t *testing.T) {
	dates, err := MonthlyDueDates(date(2026, time.January, 1), nil, nil, intPtr(500))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dates) != MaxScheduleMonths {
		t.Fatalf("expected the cap of %d dates, got %d", MaxScheduleMonths, len(dates))
	}
}

func testDB(t *testing.T) *repoFixture {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	f := &repoFixture{
		properties:   repository.NewPropertyRepo(db),
		leases:       repository.NewLeaseRepo(db),
		charges:      repository.NewLeaseChargeRepo(db),
		tasks:        repository.NewTaskRepo(db),
		reservations: repository.NewReservationRepo(db),
	}
	f.propertyID = uuid.NewString()
	if err := f.properties.Insert(context.Background(), repository.Property{ID: f.propertyID, Name: "Test Unit"}); err != nil {
		t.Fatalf("insert property: %v", err)
	}
	return f
}

type repoFixture struct {
	properties   *repository.PropertyRepo
	leases       *repository.LeaseRepo
	charges      *repository.LeaseChargeRepo
	tasks        *repository.TaskRepo
	reservations *repository.ReservationRepo
	propertyID   string
}

func TestEnsureScheduleIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := testDB(t)

	lease := repository.Lease{
		ID:             uuid.NewString(),
		PropertyID:     f.propertyID,
		TenantName:     "Ana",
		Status:         repository.LeaseActive,
		RentCents:      185000,
		Currency:       "USD",
		StartsOn:       date(2026, time.September, 1),
		ScheduleMonths: intPtr(6),
	}
	if err := f.leases.Insert(ctx, lease); err != nil {
		t.Fatalf("insert lease: %v", err)
	}

	sched := &LeaseScheduler{Charges: f.charges}
	created, err := sched.EnsureSchedule(ctx, lease)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if created != 6 {
		t.Fatalf("expected 6 charges created, got %d", created)
	}

	created, err = sched.EnsureSchedule(ctx, lease)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if created != 0 {
		t.Fatalf("rerun must create nothing, got %d", created)
	}

	charges, err := f.charges.ListByLease(ctx, lease.ID)
	if err != nil {
		t.Fatalf("list charges: %v", err)
	}
	if len(charges) != 6 {
		t.Fatalf("expected 6 charges in total, got %d", len(charges))
	}
	for _, c := range charges {
		if c.AmountCents != lease.RentCents || c.ChargeType != repository.ChargeMonthlyRent {
			t.Fatalf("unexpected charge %+v", c)
		}
	}
}
