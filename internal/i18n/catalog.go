package i18n

import "golang.org/x/text/language"

// Message catalogs keyed by locale string. English is the reference set;
// missing keys in other locales are filled from it at init so lookups
// never partially translate a screen.
var messages = map[string]map[string]string{
	"en": {
		"tab.overview":     "Overview",
		"tab.properties":   "Properties",
		"tab.expenses":     "Expenses",
		"tab.tasks":        "Tasks",
		"tab.applications": "Applications",
		"tab.leases":       "Leases",
		"tab.reservations": "Reservations",
		"tab.listings":     "Listings",
		"tab.settings":     "Settings",

		"status.ready":          "Ready",
		"status.chord.armed":    "g… waiting for key",
		"status.chord.nomap":    "No screen mapped to that key",
		"status.locale.set":     "Language changed",
		"status.task.done":      "Task completed",
		"status.task.cancel":    "Task canceled",
		"status.expense.paid":   "Expense marked paid",
		"status.settings.saved": "Settings saved",

		"help.title":    "Keyboard Shortcuts",
		"help.close":    "Esc closes this overlay",
		"help.chord":    "g then a letter jumps to a screen",
		"help.palette":  "Ctrl+K opens the command palette",
		"help.escape":   "Esc closes overlays and unfocuses panes",
		"help.helpkey":  "? shows this help",

		"palette.title":       "Command Palette",
		"palette.placeholder": "Search commands",

		"footer.jump":   "jump",
		"footer.help":   "help",
		"footer.cmds":   "commands",
		"footer.quit":   "quit",
		"footer.close":  "close",
		"footer.select": "select",
	},
	"es": {
		"tab.overview":     "Resumen",
		"tab.properties":   "Propiedades",
		"tab.expenses":     "Gastos",
		"tab.tasks":        "Tareas",
		"tab.applications": "Solicitudes",
		"tab.leases":       "Contratos",
		"tab.reservations": "Reservas",
		"tab.listings":     "Anuncios",
		"tab.settings":     "Ajustes",

		"status.ready":          "Listo",
		"status.chord.armed":    "g… esperando tecla",
		"status.chord.nomap":    "Ninguna pantalla asignada a esa tecla",
		"status.locale.set":     "Idioma cambiado",
		"status.task.done":      "Tarea completada",
		"status.task.cancel":    "Tarea cancelada",
		"status.expense.paid":   "Gasto marcado como pagado",
		"status.settings.saved": "Ajustes guardados",

		"help.title":    "Atajos de Teclado",
		"help.close":    "Esc cierra esta ventana",
		"help.chord":    "g y luego una letra salta a una pantalla",
		"help.palette":  "Ctrl+K abre la paleta de comandos",
		"help.escape":   "Esc cierra ventanas y desenfoca paneles",
		"help.helpkey":  "? muestra esta ayuda",

		"palette.title":       "Paleta de Comandos",
		"palette.placeholder": "Buscar comandos",

		"footer.jump":   "saltar",
		"footer.help":   "ayuda",
		"footer.cmds":   "comandos",
		"footer.quit":   "salir",
		"footer.close":  "cerrar",
		"footer.select": "elegir",
	},
}

func init() {
	en := messages["en"]
	for locale, m := range messages {
		if locale == "en" {
			continue
		}
		for key, value := range en {
			if _, exists := m[key]; !exists {
				m[key] = value
			}
		}
	}
}

// T renders the message for key in the given locale, falling back to
// English and finally to the key itself.
func T(tag language.Tag, key string) string {
	if m, ok := messages[tag.String()]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := messages["en"][key]; ok {
		return v
	}
	return key
}
