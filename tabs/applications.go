package tabs

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/rmorel/rentdesk/core"
	"github.com/rmorel/rentdesk/internal/database/repository"
	"github.com/rmorel/rentdesk/widgets"
)

// ApplicationsTab moves rental applications through screening. Approval
// drafts a lease for the applicant on the spot.
type ApplicationsTab struct {
	deps Deps
	rows []repository.Application
	cur  cursor
}

func NewApplicationsTab(deps Deps) *ApplicationsTab {
	return &ApplicationsTab{deps: deps}
}

func (t *ApplicationsTab) ID() string       { return "applications" }
func (t *ApplicationsTab) Path() string     { return "/applications" }
func (t *ApplicationsTab) TitleKey() string { return "tab.applications" }
func (t *ApplicationsTab) Scope() string    { return "tab:applications" }

func (t *ApplicationsTab) InitTab(m *core.Model) tea.Cmd {
	return t.load()
}

func (t *ApplicationsTab) load() tea.Cmd {
	deps := t.deps
	return func() tea.Msg {
		rows, err := deps.Applications.List(context.Background(), repository.ApplicationFilters{})
		return core.DataLoadedMsg{Key: "applications", Data: rows, Err: err}
	}
}

func (t *ApplicationsTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case core.DataLoadedMsg:
		if msg.Key != "applications" {
			return nil
		}
		t.rows = msg.Data.([]repository.Application)
		t.cur.clamp(len(t.rows))
		return nil
	case tea.KeyMsg:
		if t.cur.handle(msg.String(), len(t.rows)) {
			return nil
		}
		switch msg.String() {
		case "r":
			return t.load()
		case "s":
			return t.setStatus(repository.ApplicationScreening)
		case "x":
			return t.setStatus(repository.ApplicationRejected)
		case "a":
			return t.approve()
		}
	}
	return nil
}

func (t *ApplicationsTab) setStatus(status string) tea.Cmd {
	if t.cur.pos >= len(t.rows) {
		return core.ErrorCmd(errNoSelection)
	}
	id := t.rows[t.cur.pos].ID
	deps := t.deps
	reload := t.load()
	return func() tea.Msg {
		if err := deps.Applications.UpdateStatus(context.Background(), id, status); err != nil {
			return core.StatusMsg{Text: err.Error(), IsErr: true}
		}
		return reload()
	}
}

// approve marks the application approved and creates a draft lease
// starting on the first of next month at a rent of one third of the
// applicant's stated income.
func (t *ApplicationsTab) approve() tea.Cmd {
	if t.cur.pos >= len(t.rows) {
		return core.ErrorCmd(errNoSelection)
	}
	app := t.rows[t.cur.pos]
	deps := t.deps
	reload := t.load()
	return func() tea.Msg {
		ctx := context.Background()
		if err := deps.Applications.UpdateStatus(ctx, app.ID, repository.ApplicationApproved); err != nil {
			return core.StatusMsg{Text: err.Error(), IsErr: true}
		}
		now := time.Now()
		startsOn := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
		err := deps.Leases.Insert(ctx, repository.Lease{
			ID:         uuid.NewString(),
			PropertyID: app.PropertyID,
			TenantName: app.ApplicantName,
			Status:     repository.LeaseDraft,
			RentCents:  app.MonthlyIncomeCents / 3,
			Currency:   "USD",
			StartsOn:   startsOn,
		})
		if err != nil {
			return core.StatusMsg{Text: err.Error(), IsErr: true}
		}
		return reload()
	}
}

func (t *ApplicationsTab) Build(m *core.Model) widgets.Widget {
	rows := make([][]string, 0, len(t.rows))
	for _, a := range t.rows {
		rows = append(rows, []string{
			shortID(a.ID), a.ApplicantName, a.Email, a.Status,
			fmtMoney(a.MonthlyIncomeCents), fmtDate(a.SubmittedAt),
		})
	}
	return widgets.Table{
		Headers: []string{"ID", "Applicant", "Email", "Status", "Income", "Submitted"},
		Rows:    rows,
		Cursor:  t.cur.pos,
	}
}
