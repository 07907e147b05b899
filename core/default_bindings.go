package core

// DefaultKeyBindings returns the app-wide key registry contents. The
// leader chord ("g" + letter) is handled by Chord, not the registry; its
// entry here exists so the footer can advertise it.
func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"g"}, Action: "leader", Description: "go to…", Scopes: []string{"*"}},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: []string{"*"}},
		{Keys: []string{"?"}, Action: "help", Description: "help", Scopes: []string{"*"}},
		{Keys: []string{"esc"}, Action: "escape", Description: "close", Scopes: []string{"*"}},
		{Keys: []string{"j", "down"}, Action: "row-down", Description: "row down", Scopes: []string{"tab:expenses", "tab:tasks", "tab:applications", "tab:leases", "tab:reservations", "tab:listings", "tab:properties"}},
		{Keys: []string{"k", "up"}, Action: "row-up", Description: "row up", Scopes: []string{"tab:expenses", "tab:tasks", "tab:applications", "tab:leases", "tab:reservations", "tab:listings", "tab:properties"}},
		{Keys: []string{"r"}, Action: "reload", Description: "reload", Scopes: []string{"*"}},
		{Keys: []string{"enter"}, Action: "select", Description: "select", Scopes: []string{"screen:command", "screen:form"}},
	}
}

// DefaultChordTargets maps chord follow-up keys to navigation paths.
func DefaultChordTargets() map[string]string {
	return map[string]string{
		"o": "/overview",
		"p": "/properties",
		"e": "/expenses",
		"t": "/tasks",
		"a": "/applications",
		"l": "/leases",
		"r": "/reservations",
		"m": "/listings",
		"s": "/settings",
	}
}
