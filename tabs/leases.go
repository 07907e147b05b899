package tabs

import (
	"context"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rmorel/rentdesk/core"
	"github.com/rmorel/rentdesk/internal/database/repository"
	"github.com/rmorel/rentdesk/widgets"
)

// LeasesTab lists leases. Activating a lease materializes its monthly
// rent schedule; re-activating is harmless because the scheduler skips
// charges that already exist.
type LeasesTab struct {
	deps Deps
	rows []repository.Lease
	cur  cursor
}

func NewLeasesTab(deps Deps) *LeasesTab {
	return &LeasesTab{deps: deps}
}

func (t *LeasesTab) ID() string       { return "leases" }
func (t *LeasesTab) Path() string     { return "/leases" }
func (t *LeasesTab) TitleKey() string { return "tab.leases" }
func (t *LeasesTab) Scope() string    { return "tab:leases" }

func (t *LeasesTab) InitTab(m *core.Model) tea.Cmd {
	return t.load()
}

func (t *LeasesTab) load() tea.Cmd {
	deps := t.deps
	return func() tea.Msg {
		rows, err := deps.Leases.List(context.Background(), repository.LeaseFilters{})
		return core.DataLoadedMsg{Key: "leases", Data: rows, Err: err}
	}
}

func (t *LeasesTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case core.DataLoadedMsg:
		if msg.Key != "leases" {
			return nil
		}
		t.rows = msg.Data.([]repository.Lease)
		t.cur.clamp(len(t.rows))
		return nil
	case tea.KeyMsg:
		if t.cur.handle(msg.String(), len(t.rows)) {
			return nil
		}
		switch msg.String() {
		case "r":
			return t.load()
		case "a":
			return t.activate(m)
		case "e":
			return t.end()
		}
	}
	return nil
}

func (t *LeasesTab) activate(m *core.Model) tea.Cmd {
	if t.cur.pos >= len(t.rows) {
		return core.ErrorCmd(errNoSelection)
	}
	lease := t.rows[t.cur.pos]
	deps := t.deps
	reload := t.load()
	return tea.Sequence(func() tea.Msg {
		ctx := context.Background()
		if err := deps.Leases.UpdateStatus(ctx, lease.ID, repository.LeaseActive); err != nil {
			return core.StatusMsg{Text: err.Error(), IsErr: true}
		}
		created, err := deps.Scheduler.EnsureSchedule(ctx, lease)
		if err != nil {
			return core.StatusMsg{Text: err.Error(), IsErr: true}
		}
		return core.StatusMsg{Text: fmt.Sprintf("Lease activated, %d charges scheduled", created)}
	}, reload)
}

func (t *LeasesTab) end() tea.Cmd {
	if t.cur.pos >= len(t.rows) {
		return core.ErrorCmd(errNoSelection)
	}
	id := t.rows[t.cur.pos].ID
	deps := t.deps
	reload := t.load()
	return func() tea.Msg {
		if err := deps.Leases.UpdateStatus(context.Background(), id, repository.LeaseEnded); err != nil {
			return core.StatusMsg{Text: err.Error(), IsErr: true}
		}
		return reload()
	}
}

func (t *LeasesTab) Build(m *core.Model) widgets.Widget {
	rows := make([][]string, 0, len(t.rows))
	for _, l := range t.rows {
		months := "-"
		if l.ScheduleMonths != nil {
			months = strconv.Itoa(*l.ScheduleMonths)
		}
		rows = append(rows, []string{
			shortID(l.ID), l.TenantName, l.Status, fmtMoney(l.RentCents),
			fmtDate(l.StartsOn), fmtDatePtr(l.EndsOn), fmtDatePtr(l.FirstDueOn), months,
		})
	}
	return widgets.Table{
		Headers: []string{"ID", "Tenant", "Status", "Rent", "Starts", "Ends", "First due", "Months"},
		Rows:    rows,
		Cursor:  t.cur.pos,
	}
}
