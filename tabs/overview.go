package tabs

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rmorel/rentdesk/core"
	"github.com/rmorel/rentdesk/internal/database/repository"
	"github.com/rmorel/rentdesk/internal/service"
	"github.com/rmorel/rentdesk/widgets"
)

type overviewData struct {
	Tasks         []repository.Task
	Reservations  []repository.Reservation
	PropertyCount int
}

// OverviewTab shows this month's operations summary.
type OverviewTab struct {
	deps    Deps
	data    overviewData
	summary service.OperationsSummary
	loaded  bool
}

func NewOverviewTab(deps Deps) *OverviewTab {
	return &OverviewTab{deps: deps}
}

func (t *OverviewTab) ID() string       { return "overview" }
func (t *OverviewTab) Path() string     { return "/overview" }
func (t *OverviewTab) TitleKey() string { return "tab.overview" }
func (t *OverviewTab) Scope() string    { return "tab:overview" }

func (t *OverviewTab) InitTab(m *core.Model) tea.Cmd {
	return t.load()
}

func (t *OverviewTab) load() tea.Cmd {
	deps := t.deps
	return func() tea.Msg {
		ctx := context.Background()
		tasks, err := deps.Tasks.List(ctx, repository.TaskFilters{})
		if err != nil {
			return core.DataLoadedMsg{Key: "overview", Err: err}
		}
		reservations, err := deps.Reservations.List(ctx, repository.ReservationFilters{})
		if err != nil {
			return core.DataLoadedMsg{Key: "overview", Err: err}
		}
		count, err := deps.Properties.Count(ctx)
		if err != nil {
			return core.DataLoadedMsg{Key: "overview", Err: err}
		}
		return core.DataLoadedMsg{Key: "overview", Data: overviewData{
			Tasks:         tasks,
			Reservations:  reservations,
			PropertyCount: count,
		}}
	}
}

func (t *OverviewTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case core.DataLoadedMsg:
		if msg.Key != "overview" {
			return nil
		}
		t.data = msg.Data.(overviewData)
		now := time.Now()
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, 0)
		t.summary = service.Summarize(t.data.Tasks, t.data.Reservations, start, end, now)
		t.loaded = true
		return nil
	case tea.KeyMsg:
		if msg.String() == "r" {
			return t.load()
		}
	}
	return nil
}

func (t *OverviewTab) Build(m *core.Model) widgets.Widget {
	if !t.loaded {
		return widgets.Box{Title: m.T("tab.overview"), Content: "Loading…"}
	}
	s := t.summary
	ops := widgets.Box{
		Title: m.T("tab.overview"),
		Content: fmt.Sprintf(
			"Properties          %d\nOpen tasks          %d\nSLA breaches        %d\nTurnovers completed %d",
			t.data.PropertyCount, s.OpenTasks, s.SLABreaches, s.TurnoversCompleted,
		),
	}
	stays := widgets.Box{
		Title: m.T("tab.reservations"),
		Content: fmt.Sprintf(
			"Upcoming check-ins  %d\nUpcoming check-outs %d",
			s.UpcomingCheckIns, s.UpcomingCheckOuts,
		),
	}
	return widgets.HStack{
		Widgets: []widgets.Widget{ops, stays},
		Ratios:  []float64{0.55, 0.45},
		Gap:     1,
	}
}
