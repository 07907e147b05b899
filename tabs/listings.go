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

// ListingsTab manages marketplace listings. "f" applies the public
// search filters and previews exactly what an applicant would see;
// escape drops back to the full internal list.
type ListingsTab struct {
	deps    Deps
	rows    []repository.Listing
	cur     cursor
	public  bool
	filters repository.PublicFilters
}

func NewListingsTab(deps Deps) *ListingsTab {
	return &ListingsTab{deps: deps}
}

func (t *ListingsTab) ID() string       { return "listings" }
func (t *ListingsTab) Path() string     { return "/listings" }
func (t *ListingsTab) TitleKey() string { return "tab.listings" }
func (t *ListingsTab) Scope() string    { return "tab:listings" }

// OnGlobalEscape leaves the public preview.
func (t *ListingsTab) OnGlobalEscape(m *core.Model) tea.Cmd {
	if !t.public {
		return nil
	}
	t.public = false
	t.filters = repository.PublicFilters{}
	return t.load()
}

func (t *ListingsTab) InitTab(m *core.Model) tea.Cmd {
	return t.load()
}

func (t *ListingsTab) load() tea.Cmd {
	deps := t.deps
	public := t.public
	filters := t.filters
	return func() tea.Msg {
		ctx := context.Background()
		var rows []repository.Listing
		var err error
		if public {
			rows, err = deps.Listings.ListPublic(ctx, filters)
		} else {
			rows, err = deps.Listings.List(ctx)
		}
		return core.DataLoadedMsg{Key: "listings", Data: rows, Err: err}
	}
}

func (t *ListingsTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case core.DataLoadedMsg:
		if msg.Key != "listings" {
			return nil
		}
		t.rows = msg.Data.([]repository.Listing)
		t.cur.clamp(len(t.rows))
		return nil
	case tea.KeyMsg:
		if t.cur.handle(msg.String(), len(t.rows)) {
			return nil
		}
		switch msg.String() {
		case "r":
			return t.load()
		case "p":
			return t.publish(true)
		case "u":
			return t.publish(false)
		case "n":
			m.PushScreen(t.newListingForm())
			return nil
		case "f":
			m.PushScreen(t.publicFilterForm())
			return nil
		}
	}
	return nil
}

func (t *ListingsTab) publish(on bool) tea.Cmd {
	if t.cur.pos >= len(t.rows) {
		return core.ErrorCmd(errNoSelection)
	}
	id := t.rows[t.cur.pos].ID
	deps := t.deps
	reload := t.load()
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if on {
			err = deps.Listings.Publish(ctx, id)
		} else {
			err = deps.Listings.Unpublish(ctx, id)
		}
		if err != nil {
			return core.StatusMsg{Text: err.Error(), IsErr: true}
		}
		return reload()
	}
}

func (t *ListingsTab) newListingForm() core.Screen {
	deps := t.deps
	reload := t.load()
	return screens.NewFormScreen("New Listing", []screens.Field{
		{Name: "property_id", Label: "Property ID", Placeholder: "uuid"},
		{Name: "slug", Label: "Slug", Placeholder: "sunny-2br-hyde-park"},
		{Name: "title", Label: "Title", Placeholder: "Sunny 2BR in Hyde Park"},
		{Name: "city", Label: "City", Placeholder: "Austin"},
		{Name: "neighborhood", Label: "Neighborhood", Placeholder: "Hyde Park"},
		{Name: "cover_url", Label: "Cover image URL", Placeholder: "https://…"},
		{Name: "monthly", Label: "Monthly rent", Placeholder: "1850.00"},
		{Name: "move_in", Label: "Move-in cost", Placeholder: "3700.00"},
		{Name: "bedrooms", Label: "Bedrooms", Placeholder: "2"},
		{Name: "bathrooms", Label: "Bathrooms", Placeholder: "1"},
	}, func(values map[string]string) tea.Msg {
		if values["slug"] == "" {
			return core.StatusMsg{Text: "slug is required", IsErr: true}
		}
		monthly, _ := strconv.ParseFloat(values["monthly"], 64)
		moveIn, _ := strconv.ParseFloat(values["move_in"], 64)
		bedrooms, _ := strconv.Atoi(values["bedrooms"])
		bathrooms, _ := strconv.ParseFloat(values["bathrooms"], 64)
		var cover *string
		if values["cover_url"] != "" {
			c := values["cover_url"]
			cover = &c
		}
		err := deps.Listings.Insert(context.Background(), repository.Listing{
			ID:            uuid.NewString(),
			PropertyID:    values["property_id"],
			Slug:          values["slug"],
			Title:         values["title"],
			City:          values["city"],
			Neighborhood:  values["neighborhood"],
			CoverImageURL: cover,
			MonthlyCents:  int64(monthly*100 + 0.5),
			MoveInCents:   int64(moveIn*100 + 0.5),
			Bedrooms:      bedrooms,
			Bathrooms:     bathrooms,
		})
		if err != nil {
			return core.StatusMsg{Text: err.Error(), IsErr: true}
		}
		return reload()
	})
}

func (t *ListingsTab) publicFilterForm() core.Screen {
	tab := t
	return screens.NewFormScreen("Public Search Preview", []screens.Field{
		{Name: "city", Label: "City", Initial: t.filters.City},
		{Name: "neighborhood", Label: "Neighborhood", Initial: t.filters.Neighborhood},
		{Name: "query", Label: "Query", Placeholder: "sunny"},
		{Name: "min_monthly", Label: "Min monthly"},
		{Name: "max_monthly", Label: "Max monthly"},
		{Name: "min_move_in", Label: "Min move-in"},
		{Name: "max_move_in", Label: "Max move-in"},
		{Name: "min_bedrooms", Label: "Min bedrooms"},
		{Name: "min_bathrooms", Label: "Min bathrooms"},
	}, func(values map[string]string) tea.Msg {
		cents := func(key string) int64 {
			v, _ := strconv.ParseFloat(values[key], 64)
			return int64(v*100 + 0.5)
		}
		bedrooms, _ := strconv.Atoi(values["min_bedrooms"])
		bathrooms, _ := strconv.ParseFloat(values["min_bathrooms"], 64)
		tab.public = true
		tab.filters = repository.PublicFilters{
			City:         values["city"],
			Neighborhood: values["neighborhood"],
			Query:        values["query"],
			MinMonthly:   cents("min_monthly"),
			MaxMonthly:   cents("max_monthly"),
			MinMoveIn:    cents("min_move_in"),
			MaxMoveIn:    cents("max_move_in"),
			MinBedrooms:  bedrooms,
			MinBathrooms: bathrooms,
		}
		return tab.load()()
	})
}

func (t *ListingsTab) Build(m *core.Model) widgets.Widget {
	rows := make([][]string, 0, len(t.rows))
	for _, l := range t.rows {
		pub := "no"
		if l.Published {
			pub = "yes"
		}
		cover := "-"
		if l.CoverImageURL != nil {
			cover = "set"
		}
		rows = append(rows, []string{
			shortID(l.ID), l.Slug, l.Title, l.City, pub, cover,
			fmtMoney(l.MonthlyCents), fmtMoney(l.MoveInCents),
		})
	}
	headers := []string{"ID", "Slug", "Title", "City", "Pub", "Cover", "Monthly", "Move-in"}
	table := widgets.Table{Headers: headers, Rows: rows, Cursor: t.cur.pos}
	if t.public {
		return widgets.VStack{
			Widgets: []widgets.Widget{publicBanner{}, table},
			Ratios:  []float64{0.06, 0.94},
		}
	}
	return table
}

type publicBanner struct{}

func (publicBanner) Render(width, height int) string {
	return "PUBLIC PREVIEW (esc to exit)"
}
