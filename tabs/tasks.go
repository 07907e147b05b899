package tabs

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rmorel/rentdesk/core"
	"github.com/rmorel/rentdesk/internal/database/repository"
	"github.com/rmorel/rentdesk/widgets"
)

// TasksTab lists operational tasks, including the ones the reservation
// turnover sync generates.
type TasksTab struct {
	deps Deps
	rows []repository.Task
	cur  cursor
}

func NewTasksTab(deps Deps) *TasksTab {
	return &TasksTab{deps: deps}
}

func (t *TasksTab) ID() string       { return "tasks" }
func (t *TasksTab) Path() string     { return "/tasks" }
func (t *TasksTab) TitleKey() string { return "tab.tasks" }
func (t *TasksTab) Scope() string    { return "tab:tasks" }

func (t *TasksTab) InitTab(m *core.Model) tea.Cmd {
	return t.load()
}

func (t *TasksTab) load() tea.Cmd {
	deps := t.deps
	return func() tea.Msg {
		rows, err := deps.Tasks.List(context.Background(), repository.TaskFilters{})
		return core.DataLoadedMsg{Key: "tasks", Data: rows, Err: err}
	}
}

func (t *TasksTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case core.DataLoadedMsg:
		if msg.Key != "tasks" {
			return nil
		}
		t.rows = msg.Data.([]repository.Task)
		t.cur.clamp(len(t.rows))
		return nil
	case tea.KeyMsg:
		if t.cur.handle(msg.String(), len(t.rows)) {
			return nil
		}
		switch msg.String() {
		case "r":
			return t.load()
		case "d":
			return t.setStatus(m, repository.TaskStatusDone, "status.task.done")
		case "x":
			return t.setStatus(m, repository.TaskStatusCanceled, "status.task.cancel")
		}
	}
	return nil
}

func (t *TasksTab) setStatus(m *core.Model, status, statusKey string) tea.Cmd {
	if t.cur.pos >= len(t.rows) {
		return core.ErrorCmd(errNoSelection)
	}
	id := t.rows[t.cur.pos].ID
	deps := t.deps
	reload := t.load()
	var completed *time.Time
	if status == repository.TaskStatusDone {
		now := time.Now().UTC()
		completed = &now
	}
	m.SetStatus(m.T(statusKey))
	return func() tea.Msg {
		if err := deps.Tasks.UpdateStatus(context.Background(), id, status, completed); err != nil {
			return core.StatusMsg{Text: err.Error(), IsErr: true}
		}
		return reload()
	}
}

func (t *TasksTab) Build(m *core.Model) widgets.Widget {
	rows := make([][]string, 0, len(t.rows))
	for _, task := range t.rows {
		res := "-"
		if task.ReservationID != nil {
			res = shortID(*task.ReservationID)
		}
		rows = append(rows, []string{
			shortID(task.ID), task.Type, task.Title, task.Status, res,
			fmtDate(task.DueAt), fmtDatePtr(task.SLADueAt),
		})
	}
	return widgets.Table{
		Headers: []string{"ID", "Type", "Title", "Status", "Res", "Due", "SLA"},
		Rows:    rows,
		Cursor:  t.cur.pos,
	}
}
