// Package service defines the storage interface behind the commands.
package service

import "please/internal/tasklist"

// Record is the persisted per-user state.
type Record struct {
	UserName         string        `json:"user_name"`
	Tasks            tasklist.List `json:"tasks"`
	InitialSetupDone bool          `json:"initial_setup_done"`

	// TimeFormat24h is nil when the key is absent from the file.
	TimeFormat24h *bool `json:"time_format_24h,omitempty"`

	// DisableLine drops the rule drawn around the greeting.
	DisableLine *bool `json:"disable_line,omitempty"`
}

// Uses24h reports whether the clock is shown in 24-hour format.
func (r Record) Uses24h() bool {
	return r.TimeFormat24h != nil && *r.TimeFormat24h
}

// LineDisabled reports whether the greeting is printed without a rule.
func (r Record) LineDisabled() bool {
	return r.DisableLine != nil && *r.DisableLine
}

// NeedsSetup reports whether first-run setup has not completed yet.
func (r Record) NeedsSetup() bool {
	return !r.InitialSetupDone
}
