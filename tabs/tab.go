package tabs

import (
	"errors"
	"fmt"
	"time"

	"github.com/rmorel/rentdesk/internal/database/repository"
	"github.com/rmorel/rentdesk/internal/service"
)

// Deps bundles the repositories and services tabs pull data through.
type Deps struct {
	Properties   *repository.PropertyRepo
	Expenses     *repository.ExpenseRepo
	Tasks        *repository.TaskRepo
	Applications *repository.ApplicationRepo
	Leases       *repository.LeaseRepo
	Charges      *repository.LeaseChargeRepo
	Reservations *repository.ReservationRepo
	Listings     *repository.ListingRepo
	Scheduler    *service.LeaseScheduler
	Turnover     *service.Turnover
}

// cursor tracks the highlighted row of a table tab.
type cursor struct {
	pos int
}

func (c *cursor) clamp(n int) {
	if c.pos >= n {
		c.pos = n - 1
	}
	if c.pos < 0 {
		c.pos = 0
	}
}

// handle consumes j/k and arrow keys. Returns false for anything else.
func (c *cursor) handle(key string, n int) bool {
	switch key {
	case "j", "down":
		if c.pos < n-1 {
			c.pos++
		}
		return true
	case "k", "up":
		if c.pos > 0 {
			c.pos--
		}
		return true
	}
	return false
}

func fmtMoney(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

func fmtDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func fmtDatePtr(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return fmtDate(*t)
}

var errNoSelection = errors.New("no row selected")

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
