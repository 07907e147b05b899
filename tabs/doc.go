// Package tabs contains the top-level screens of the dashboard.
//
// Allowed here:
// - tab implementations that satisfy core.Tab
// - tab-local state (cursors, filters, loaded rows) and data loading
//
// Not allowed here:
// - raw SQL (repositories own that)
// - app-wide routing or key registry ownership
package tabs
