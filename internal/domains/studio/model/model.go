package model

import "salon/shared/model"

const (
	TableName  = "studios"
	EntityName = "studio"

	FieldID = "id"
)

const (
	LocationTableName  = "locations"
	LocationEntityName = "location"

	FieldLocationID        = "id"
	FieldLocationStudioID  = "studio_id"
	FieldLocationIsActive  = "is_active"
	FieldLocationIsPrimary = "is_primary"
)

const (
	TeamMemberTableName  = "team_members"
	TeamMemberEntityName = "team_member"

	FieldTeamMemberID         = "id"
	FieldTeamMemberStudioID   = "studio_id"
	FieldTeamMemberIsBookable = "is_bookable"
	FieldTeamMemberName       = "name"
)

// Studio is the tenant root. MinAdvanceMinutes hides slots starting too soon.
type Studio struct {
	ID                string `db:"id"`
	Name              string `db:"name"`
	Timezone          string `db:"timezone"`
	Currency          string `db:"currency"`
	Locale            string `db:"locale"`
	MinAdvanceMinutes int    `db:"min_advance_minutes"`
	model.Metadata
}

type Location struct {
	ID        string `db:"id"`
	StudioID  string `db:"studio_id"`
	Name      string `db:"name"`
	Address   string `db:"address"`
	IsActive  bool   `db:"is_active"`
	IsPrimary bool   `db:"is_primary"`
	model.Metadata
}

type TeamMember struct {
	ID             string `db:"id"`
	StudioID       string `db:"studio_id"`
	Name           string `db:"name"`
	Title          string `db:"title"`
	CalendarColor  string `db:"calendar_color"`
	EmploymentType string `db:"employment_type"`
	IsBookable     bool   `db:"is_bookable"`
	model.Metadata
}
