package repository

import "time"

// Property represents a rentable unit.
type Property struct {
	ID           string
	Name         string
	Address      string
	City         string
	Neighborhood string
	UnitType     string
	Bedrooms     int
	Bathrooms    float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Expense represents an expense row.
type Expense struct {
	ID          string
	PropertyID  string
	Category    string
	Description string
	AmountCents int64
	Currency    string
	Status      string
	IncurredOn  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Task represents an operational task, optionally tied to a reservation.
type Task struct {
	ID            string
	PropertyID    string
	ReservationID *string
	Type          string
	Title         string
	Status        string
	DueAt         time.Time
	SLADueAt      *time.Time
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Application represents a rental application.
type Application struct {
	ID                 string
	PropertyID         string
	ApplicantName      string
	Email              string
	Status             string
	MonthlyIncomeCents int64
	SubmittedAt        time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Lease represents a lease row.
type Lease struct {
	ID             string
	PropertyID     string
	TenantName     string
	Status         string
	RentCents      int64
	Currency       string
	StartsOn       time.Time
	EndsOn         *time.Time
	FirstDueOn     *time.Time
	ScheduleMonths *int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LeaseCharge represents one scheduled charge on a lease.
type LeaseCharge struct {
	ID          string
	LeaseID     string
	ChargeType  string
	AmountCents int64
	Status      string
	DueOn       time.Time
	CreatedAt   time.Time
}

// Reservation represents a short-stay booking.
type Reservation struct {
	ID         string
	PropertyID string
	GuestName  string
	Status     string
	Source     string
	CheckIn    time.Time
	CheckOut   time.Time
	TotalCents int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Listing represents a marketplace listing backed by a property.
type Listing struct {
	ID            string
	PropertyID    string
	Slug          string
	Title         string
	City          string
	Neighborhood  string
	CoverImageURL *string
	Published     bool
	MonthlyCents  int64
	MoveInCents   int64
	Bedrooms      int
	Bathrooms     float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Task types produced by reservation turnover sync.
const (
	TaskTypeCheckIn    = "check_in"
	TaskTypeCheckOut   = "check_out"
	TaskTypeCleaning   = "cleaning"
	TaskTypeInspection = "inspection"
	TaskTypeCustom     = "custom"
)

// Task statuses.
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
	TaskStatusCanceled   = "canceled"
)

// Reservation statuses.
const (
	ReservationPending    = "pending"
	ReservationConfirmed  = "confirmed"
	ReservationCheckedIn  = "checked_in"
	ReservationCheckedOut = "checked_out"
	ReservationCanceled   = "canceled"
)

// Application statuses.
const (
	ApplicationSubmitted = "submitted"
	ApplicationScreening = "screening"
	ApplicationApproved  = "approved"
	ApplicationRejected  = "rejected"
)

// Lease statuses.
const (
	LeaseDraft  = "draft"
	LeaseActive = "active"
	LeaseEnded  = "ended"
)

// Expense statuses.
const (
	ExpensePending = "pending"
	ExpensePaid    = "paid"
)

// ChargeMonthlyRent is the charge type emitted by the lease schedule.
const ChargeMonthlyRent = "monthly_rent"
