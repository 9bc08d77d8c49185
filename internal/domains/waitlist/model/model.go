package model

import (
	"cmp"
	"salon/shared/clock"
	"salon/shared/model"
	"slices"
	"strings"
	"time"
)

const (
	TableName  = "waitlist_entries"
	EntityName = "waitlist_entry"

	FieldID                     = "id"
	FieldStudioID               = "studio_id"
	FieldClientID               = "client_id"
	FieldServiceID              = "service_id"
	FieldLocationID             = "location_id"
	FieldTeamMemberID           = "team_member_id"
	FieldPriorityScore          = "priority_score"
	FieldIsActive               = "is_active"
	FieldFulfilledAppointmentID = "fulfilled_appointment_id"
	FieldCreatedAt              = "created_at"
)

// Entry is a client waiting for an opening. Nil preferences accept anything.
type Entry struct {
	ID                     string              `db:"id"`
	StudioID               string              `db:"studio_id"`
	ClientID               string              `db:"client_id"`
	ServiceID              *string             `db:"service_id"`
	LocationID             *string             `db:"location_id"`
	TeamMemberID           *string             `db:"team_member_id"`
	PreferredDateFrom      *time.Time          `db:"preferred_date_from"`
	PreferredDateTo        *time.Time          `db:"preferred_date_to"`
	PreferredTimeStart     clock.NullTimeOfDay `db:"preferred_time_start"`
	PreferredTimeEnd       clock.NullTimeOfDay `db:"preferred_time_end"`
	PriorityScore          int                 `db:"priority_score"`
	IsActive               bool                `db:"is_active"`
	FulfilledAppointmentID *string             `db:"fulfilled_appointment_id"`
	Notes                  string              `db:"notes"`
	model.Metadata
}

// Opening is a concrete time an entry could be offered.
type Opening struct {
	ServiceID    string
	LocationID   string
	TeamMemberID string
	Date         time.Time
	Start        clock.TimeOfDay
	End          clock.TimeOfDay
}

// Matches reports whether the entry would accept the opening.
func (e Entry) Matches(o Opening) bool {
	if !e.IsActive || e.FulfilledAppointmentID != nil {
		return false
	}

	if !accepts(e.ServiceID, o.ServiceID) || !accepts(e.LocationID, o.LocationID) || !accepts(e.TeamMemberID, o.TeamMemberID) {
		return false
	}

	date := clock.DateOf(o.Date)

	if e.PreferredDateFrom != nil && date.Before(clock.DateOf(*e.PreferredDateFrom)) {
		return false
	}

	if e.PreferredDateTo != nil && date.After(clock.DateOf(*e.PreferredDateTo)) {
		return false
	}

	if e.PreferredTimeStart.Valid && o.Start < e.PreferredTimeStart.Time {
		return false
	}

	if e.PreferredTimeEnd.Valid && o.End > e.PreferredTimeEnd.Time {
		return false
	}

	return true
}

func accepts(preference *string, value string) bool {
	return preference == nil || *preference == value
}

// SortForFulfillment orders entries by priority, highest first, then oldest first.
func SortForFulfillment(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.PriorityScore, a.PriorityScore); c != 0 {
			return c
		}

		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return strings.Compare(a.ID, b.ID)
	})
}
