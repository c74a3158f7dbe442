// Package render turns backend snapshots into view models.
//
// Every function here is pure: the same input always yields the same output,
// so the TUI can re-apply a projection on each poll without visual churn.
package render
