package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/rmorel/rentdesk/core"
	"github.com/rmorel/rentdesk/internal/config"
	"github.com/rmorel/rentdesk/internal/database"
	"github.com/rmorel/rentdesk/internal/database/repository"
	"github.com/rmorel/rentdesk/internal/i18n"
	"github.com/rmorel/rentdesk/internal/prefs"
	"github.com/rmorel/rentdesk/internal/service"
	"github.com/rmorel/rentdesk/internal/watcher"
	"github.com/rmorel/rentdesk/screens"
	"github.com/rmorel/rentdesk/tabs"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}

	// repositories
	deps := tabs.Deps{
		Properties:   repository.NewPropertyRepo(db),
		Expenses:     repository.NewExpenseRepo(db),
		Tasks:        repository.NewTaskRepo(db),
		Applications: repository.NewApplicationRepo(db),
		Leases:       repository.NewLeaseRepo(db),
		Charges:      repository.NewLeaseChargeRepo(db),
		Reservations: repository.NewReservationRepo(db),
		Listings:     repository.NewListingRepo(db),
	}
	deps.Scheduler = &service.LeaseScheduler{Charges: deps.Charges}
	deps.Turnover = &service.Turnover{Tasks: deps.Tasks}

	// locale: a persisted preference wins over the configured default
	attr := &i18n.Attr{}
	var slot i18n.Slot
	localeSlot, err := prefs.NewLocaleSlot()
	if err != nil {
		log.Printf("warn: locale preference unavailable: %v", err)
	} else {
		slot = localeSlot
	}
	store := i18n.New(startupLocale(cfg, slot), slot, attr)

	chord := core.NewChord(core.DefaultChordTargets())
	keys := core.NewKeyRegistry(core.DefaultKeyBindings())
	commands := core.NewCommandRegistry(buildCommands(chord.Targets()))

	tabList := []core.Tab{
		tabs.NewOverviewTab(deps),
		tabs.NewPropertiesTab(deps),
		tabs.NewExpensesTab(deps),
		tabs.NewTasksTab(deps),
		tabs.NewApplicationsTab(deps),
		tabs.NewLeasesTab(deps),
		tabs.NewReservationsTab(deps),
		tabs.NewListingsTab(deps),
		tabs.NewSettingsTab(cfg),
	}

	model := core.NewModel(tabList, keys, commands, chord, store, db)
	model.OpenCommandModal = openCommandModal
	model.OpenHelpModal = helpModal(chord.Targets())

	p := tea.NewProgram(model, tea.WithAltScreen())

	cancel := store.Subscribe(func(tag language.Tag) {
		p.Send(core.LocaleAppliedMsg{Tag: tag})
	})
	defer cancel()

	if slot != nil {
		w, err := watcher.New(slot.Key(), 100*time.Millisecond, func(path string) {
			p.Send(core.LocaleStorageMsg{Key: path})
		})
		if err != nil {
			log.Printf("warn: locale watcher unavailable: %v", err)
		} else if err := w.Start(); err != nil {
			log.Printf("warn: locale watcher failed to start: %v", err)
		} else {
			defer w.Stop()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

// startupLocale seeds the store: saved preference first, then the
// configured locale, then the compiled-in default.
func startupLocale(cfg config.Config, slot i18n.Slot) language.Tag {
	if slot != nil {
		if raw, err := slot.Load(); err == nil {
			if tag, ok := i18n.Parse(raw); ok {
				return tag
			}
		}
	}
	if tag, ok := i18n.Parse(cfg.UI.Locale); ok {
		return tag
	}
	return i18n.Default()
}

func openCommandModal(m *core.Model, scope string) core.Screen {
	return screens.NewCommandScreen(m.T("palette.title"), m.T("palette.placeholder"), scope, func(query string) []screens.CommandOption {
		results := m.CommandRegistry().Search(query, scope, m)
		out := make([]screens.CommandOption, 0, len(results))
		for _, r := range results {
			out = append(out, screens.CommandOption{
				ID:       r.CommandID,
				Name:     r.Name,
				Desc:     r.Desc,
				Disabled: r.Disabled,
				Reason:   r.Reason,
			})
		}
		return out
	}, func(id string) tea.Msg {
		return core.CommandExecuteMsg{CommandID: id}
	})
}

func helpModal(targets map[string]string) func(m *core.Model) core.Screen {
	return func(m *core.Model) core.Screen {
		rows := []screens.HelpRow{
			{Key: "g+key", Desc: m.T("help.chord")},
			{Key: "ctrl+k", Desc: m.T("help.palette")},
			{Key: "?", Desc: m.T("help.helpkey")},
			{Key: "esc", Desc: m.T("help.escape")},
		}
		keys := make([]string, 0, len(targets))
		for k := range targets {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			path := targets[k]
			titleKey := "tab." + strings.TrimPrefix(path, "/")
			rows = append(rows, screens.HelpRow{Key: "g " + k, Desc: m.T(titleKey)})
		}
		return screens.NewHelpScreen(m.T("help.title"), m.T("help.close"), rows)
	}
}

func buildCommands(targets map[string]string) []core.Command {
	cmds := make([]core.Command, 0, len(targets)+2)
	for key, path := range targets {
		name := strings.TrimPrefix(path, "/")
		cmds = append(cmds, core.Command{
			ID:          "nav:" + name,
			Name:        "Go to " + name,
			Description: "Switch to the " + name + " tab (g " + key + ")",
			Scopes:      []string{"*"},
			Execute: func(m *core.Model) tea.Cmd {
				return m.Navigate(path)
			},
		})
	}
	cmds = append(cmds,
		core.Command{
			ID:          "locale:en",
			Name:        "Language: English",
			Description: "Switch the interface to English",
			Scopes:      []string{"*"},
			Execute: func(m *core.Model) tea.Cmd {
				return func() tea.Msg { return core.LocaleEventMsg{Payload: "en"} }
			},
		},
		core.Command{
			ID:          "locale:es",
			Name:        "Language: Español",
			Description: "Switch the interface to Spanish",
			Scopes:      []string{"*"},
			Execute: func(m *core.Model) tea.Cmd {
				return func() tea.Msg { return core.LocaleEventMsg{Payload: "es"} }
			},
		},
	)
	return cmds
}
