package tabs

import (
	"context"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/rmorel/rentdesk/core"
	"github.com/rmorel/rentdesk/internal/database/repository"
	"github.com/rmorel/rentdesk/screens"
	"github.com/rmorel/rentdesk/widgets"
)

// ReservationsTab manages short-stay bookings. Every status transition
// re-syncs the turnover task chain for the reservation.
type ReservationsTab struct {
	deps Deps
	rows []repository.Reservation
	cur  cursor
}

func NewReservationsTab(deps Deps) *ReservationsTab {
	return &ReservationsTab{deps: deps}
}

func (t *ReservationsTab) ID() string       { return "reservations" }
func (t *ReservationsTab) Path() string     { return "/reservations" }
func (t *ReservationsTab) TitleKey() string { return "tab.reservations" }
func (t *ReservationsTab) Scope() string    { return "tab:reservations" }

func (t *ReservationsTab) InitTab(m *core.Model) tea.Cmd {
	return t.load()
}

func (t *ReservationsTab) load() tea.Cmd {
	deps := t.deps
	return func() tea.Msg {
		rows, err := deps.Reservations.List(context.Background(), repository.ReservationFilters{})
		return core.DataLoadedMsg{Key: "reservations", Data: rows, Err: err}
	}
}

func (t *ReservationsTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case core.DataLoadedMsg:
		if msg.Key != "reservations" {
			return nil
		}
		t.rows = msg.Data.([]repository.Reservation)
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
			m.PushScreen(t.newReservationForm())
			return nil
		case "c":
			return t.transition(repository.ReservationConfirmed)
		case "i":
			return t.transition(repository.ReservationCheckedIn)
		case "o":
			return t.transition(repository.ReservationCheckedOut)
		case "x":
			return t.transition(repository.ReservationCanceled)
		}
	}
	return nil
}

func (t *ReservationsTab) transition(status string) tea.Cmd {
	if t.cur.pos >= len(t.rows) {
		return core.ErrorCmd(errNoSelection)
	}
	res := t.rows[t.cur.pos]
	deps := t.deps
	reload := t.load()
	return tea.Sequence(func() tea.Msg {
		ctx := context.Background()
		if err := deps.Reservations.UpdateStatus(ctx, res.ID, status); err != nil {
			return core.StatusMsg{Text: err.Error(), IsErr: true}
		}
		res.Status = status
		created, err := deps.Turnover.SyncTasks(ctx, res)
		if err != nil {
			return core.StatusMsg{Text: err.Error(), IsErr: true}
		}
		if len(created) > 0 {
			return core.StatusMsg{Text: "Reservation " + status + ", tasks: " + strings.Join(created, ", ")}
		}
		return core.StatusMsg{Text: "Reservation " + status}
	}, reload)
}

func (t *ReservationsTab) newReservationForm() core.Screen {
	deps := t.deps
	reload := t.load()
	return screens.NewFormScreen("New Reservation", []screens.Field{
		{Name: "property_id", Label: "Property ID", Placeholder: "uuid"},
		{Name: "guest_name", Label: "Guest", Placeholder: "Dana Smith"},
		{Name: "source", Label: "Source", Placeholder: "direct"},
		{Name: "check_in", Label: "Check-in", Placeholder: "2026-09-04"},
		{Name: "check_out", Label: "Check-out", Placeholder: "2026-09-08"},
		{Name: "total", Label: "Total", Placeholder: "640.00"},
	}, func(values map[string]string) tea.Msg {
		checkIn, err := time.Parse("2006-01-02", values["check_in"])
		if err != nil {
			return core.StatusMsg{Text: "invalid check-in: " + values["check_in"], IsErr: true}
		}
		checkOut, err := time.Parse("2006-01-02", values["check_out"])
		if err != nil {
			return core.StatusMsg{Text: "invalid check-out: " + values["check_out"], IsErr: true}
		}
		if !checkOut.After(checkIn) {
			return core.StatusMsg{Text: "check-out must be after check-in", IsErr: true}
		}
		total, _ := strconv.ParseFloat(values["total"], 64)

		ctx := context.Background()
		overlap, err := deps.Reservations.HasOverlap(ctx, values["property_id"], checkIn, checkOut, "")
		if err != nil {
			return core.StatusMsg{Text: err.Error(), IsErr: true}
		}
		if overlap {
			return core.StatusMsg{Text: "dates overlap an existing reservation", IsErr: true}
		}
		err = deps.Reservations.Insert(ctx, repository.Reservation{
			ID:         uuid.NewString(),
			PropertyID: values["property_id"],
			GuestName:  values["guest_name"],
			Status:     repository.ReservationPending,
			Source:     values["source"],
			CheckIn:    checkIn,
			CheckOut:   checkOut,
			TotalCents: int64(total*100 + 0.5),
		})
		if err != nil {
			return core.StatusMsg{Text: err.Error(), IsErr: true}
		}
		return reload()
	})
}

func (t *ReservationsTab) Build(m *core.Model) widgets.Widget {
	rows := make([][]string, 0, len(t.rows))
	for _, r := range t.rows {
		rows = append(rows, []string{
			shortID(r.ID), r.GuestName, r.Status, r.Source,
			fmtDate(r.CheckIn), fmtDate(r.CheckOut), fmtMoney(r.TotalCents),
		})
	}
	return widgets.Table{
		Headers: []string{"ID", "Guest", "Status", "Source", "In", "Out", "Total"},
		Rows:    rows,
		Cursor:  t.cur.pos,
	}
}
