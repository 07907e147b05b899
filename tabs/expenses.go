package tabs

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/rmorel/rentdesk/core"
	"github.com/rmorel/rentdesk/internal/database/repository"
	"github.com/rmorel/rentdesk/screens"
	"github.com/rmorel/rentdesk/widgets"
)

// ExpensesTab lists expenses with a transient search filter. While the
// filter input is focused, global single-key shortcuts stay suppressed.
type ExpensesTab struct {
	deps      Deps
	rows      []repository.Expense
	cur       cursor
	filter    textinput.Model
	filtering bool
}

func NewExpensesTab(deps Deps) *ExpensesTab {
	inp := textinput.New()
	inp.Placeholder = "search description"
	inp.Prompt = "/"
	inp.CharLimit = 64
	return &ExpensesTab{deps: deps, filter: inp}
}

func (t *ExpensesTab) ID() string       { return "expenses" }
func (t *ExpensesTab) Path() string     { return "/expenses" }
func (t *ExpensesTab) TitleKey() string { return "tab.expenses" }
func (t *ExpensesTab) Scope() string    { return "tab:expenses" }

// InputFocused reports whether the search filter owns the keyboard.
func (t *ExpensesTab) InputFocused() bool { return t.filtering }

// OnGlobalEscape clears an applied filter when the input is not focused.
func (t *ExpensesTab) OnGlobalEscape(m *core.Model) tea.Cmd {
	if t.filter.Value() == "" {
		return nil
	}
	t.filter.SetValue("")
	return t.load()
}

func (t *ExpensesTab) InitTab(m *core.Model) tea.Cmd {
	return t.load()
}

func (t *ExpensesTab) load() tea.Cmd {
	deps := t.deps
	search := strings.TrimSpace(t.filter.Value())
	return func() tea.Msg {
		rows, err := deps.Expenses.List(context.Background(), repository.ExpenseFilters{Search: search})
		return core.DataLoadedMsg{Key: "expenses", Data: rows, Err: err}
	}
}

func (t *ExpensesTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case core.DataLoadedMsg:
		if msg.Key != "expenses" {
			return nil
		}
		t.rows = msg.Data.([]repository.Expense)
		t.cur.clamp(len(t.rows))
		return nil
	case tea.KeyMsg:
		if t.filtering {
			switch msg.String() {
			case "enter":
				t.filtering = false
				t.filter.Blur()
				return t.load()
			case "esc":
				t.filtering = false
				t.filter.Blur()
				t.filter.SetValue("")
				return t.load()
			}
			var cmd tea.Cmd
			t.filter, cmd = t.filter.Update(msg)
			return cmd
		}
		if t.cur.handle(msg.String(), len(t.rows)) {
			return nil
		}
		switch msg.String() {
		case "/":
			t.filtering = true
			t.filter.Focus()
			return nil
		case "r":
			return t.load()
		case "p":
			return t.markPaid(m)
		case "n":
			m.PushScreen(t.newExpenseForm())
			return nil
		}
	}
	return nil
}

func (t *ExpensesTab) markPaid(m *core.Model) tea.Cmd {
	if t.cur.pos >= len(t.rows) {
		return core.ErrorCmd(errNoSelection)
	}
	id := t.rows[t.cur.pos].ID
	deps := t.deps
	reload := t.load()
	m.SetStatus(m.T("status.expense.paid"))
	return func() tea.Msg {
		if err := deps.Expenses.MarkPaid(context.Background(), id); err != nil {
			return core.StatusMsg{Text: err.Error(), IsErr: true}
		}
		return reload()
	}
}

func (t *ExpensesTab) newExpenseForm() core.Screen {
	deps := t.deps
	reload := t.load()
	return screens.NewFormScreen("New Expense", []screens.Field{
		{Name: "property_id", Label: "Property ID", Placeholder: "uuid"},
		{Name: "category", Label: "Category", Placeholder: "repairs"},
		{Name: "description", Label: "Description", Placeholder: "Fix water heater"},
		{Name: "amount", Label: "Amount", Placeholder: "120.50"},
		{Name: "incurred_on", Label: "Incurred on", Placeholder: "2026-08-01"},
	}, func(values map[string]string) tea.Msg {
		amount, err := strconv.ParseFloat(values["amount"], 64)
		if err != nil {
			return core.StatusMsg{Text: "invalid amount: " + values["amount"], IsErr: true}
		}
		incurred, err := time.Parse("2006-01-02", values["incurred_on"])
		if err != nil {
			return core.StatusMsg{Text: "invalid date: " + values["incurred_on"], IsErr: true}
		}
		err = deps.Expenses.Insert(context.Background(), repository.Expense{
			ID:          uuid.NewString(),
			PropertyID:  values["property_id"],
			Category:    values["category"],
			Description: values["description"],
			AmountCents: int64(amount*100 + 0.5),
			Currency:    "USD",
			Status:      repository.ExpensePending,
			IncurredOn:  incurred,
		})
		if err != nil {
			return core.StatusMsg{Text: err.Error(), IsErr: true}
		}
		return reload()
	})
}

func (t *ExpensesTab) Build(m *core.Model) widgets.Widget {
	rows := make([][]string, 0, len(t.rows))
	for _, e := range t.rows {
		rows = append(rows, []string{
			shortID(e.ID), e.Category, e.Description, fmtMoney(e.AmountCents), e.Status, fmtDate(e.IncurredOn),
		})
	}
	table := widgets.Table{
		Headers: []string{"ID", "Category", "Description", "Amount", "Status", "Incurred"},
		Rows:    rows,
		Cursor:  t.cur.pos,
	}
	if t.filtering || t.filter.Value() != "" {
		return widgets.VStack{Widgets: []widgets.Widget{filterBar{input: &t.filter}, table}, Ratios: []float64{0.08, 0.92}}
	}
	return table
}

type filterBar struct {
	input *textinput.Model
}

func (f filterBar) Render(width, height int) string {
	return f.input.View()
}
