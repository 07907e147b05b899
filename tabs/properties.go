package tabs

import (
	"context"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/rmorel/rentdesk/core"
	"github.com/rmorel/rentdesk/internal/database/repository"
	"github.com/rmorel/rentdesk/screens"
	"github.com/rmorel/rentdesk/widgets"
)

// PropertiesTab lists the portfolio and creates new units.
type PropertiesTab struct {
	deps Deps
	rows []repository.Property
	cur  cursor
}

func NewPropertiesTab(deps Deps) *PropertiesTab {
	return &PropertiesTab{deps: deps}
}

func (t *PropertiesTab) ID() string       { return "properties" }
func (t *PropertiesTab) Path() string     { return "/properties" }
func (t *PropertiesTab) TitleKey() string { return "tab.properties" }
func (t *PropertiesTab) Scope() string    { return "tab:properties" }

func (t *PropertiesTab) InitTab(m *core.Model) tea.Cmd {
	return t.load()
}

func (t *PropertiesTab) load() tea.Cmd {
	deps := t.deps
	return func() tea.Msg {
		rows, err := deps.Properties.List(context.Background())
		return core.DataLoadedMsg{Key: "properties", Data: rows, Err: err}
	}
}

func (t *PropertiesTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case core.DataLoadedMsg:
		if msg.Key != "properties" {
			return nil
		}
		t.rows = msg.Data.([]repository.Property)
		t.cur.clamp(len(t.rows))
		return nil
	case tea.KeyMsg:
		if t.cur.handle(msg.String(), len(t.rows)) {
			return nil
		}
		switch msg.String() {
		case "r":
			return t.load()
		case "n":
			m.PushScreen(t.newPropertyForm())
			return nil
		}
	}
	return nil
}

func (t *PropertiesTab) newPropertyForm() core.Screen {
	deps := t.deps
	reload := t.load()
	return screens.NewFormScreen("New Property", []screens.Field{
		{Name: "name", Label: "Name", Placeholder: "Unit 4B"},
		{Name: "address", Label: "Address", Placeholder: "12 Elm St"},
		{Name: "city", Label: "City", Placeholder: "Austin"},
		{Name: "neighborhood", Label: "Neighborhood", Placeholder: "Hyde Park"},
		{Name: "unit_type", Label: "Unit type", Placeholder: "apartment"},
		{Name: "bedrooms", Label: "Bedrooms", Placeholder: "2"},
		{Name: "bathrooms", Label: "Bathrooms", Placeholder: "1.5"},
	}, func(values map[string]string) tea.Msg {
		if values["name"] == "" {
			return core.StatusMsg{Text: "name is required", IsErr: true}
		}
		bedrooms, _ := strconv.Atoi(values["bedrooms"])
		bathrooms, _ := strconv.ParseFloat(values["bathrooms"], 64)
		err := deps.Properties.Insert(context.Background(), repository.Property{
			ID:           uuid.NewString(),
			Name:         values["name"],
			Address:      values["address"],
			City:         values["city"],
			Neighborhood: values["neighborhood"],
			UnitType:     values["unit_type"],
			Bedrooms:     bedrooms,
			Bathrooms:    bathrooms,
		})
		if err != nil {
			return core.StatusMsg{Text: err.Error(), IsErr: true}
		}
		return reload()
	})
}

func (t *PropertiesTab) Build(m *core.Model) widgets.Widget {
	rows := make([][]string, 0, len(t.rows))
	for _, p := range t.rows {
		rows = append(rows, []string{
			shortID(p.ID), p.Name, p.City, p.Neighborhood, p.UnitType,
			strconv.Itoa(p.Bedrooms), strconv.FormatFloat(p.Bathrooms, 'f', -1, 64),
		})
	}
	return widgets.Table{
		Headers: []string{"ID", "Name", "City", "Neighborhood", "Type", "Bd", "Ba"},
		Rows:    rows,
		Cursor:  t.cur.pos,
	}
}
