package dto

import (
	"net/http"
	"salon/internal/domains/waitlist/model"
	"salon/shared/clock"
	gDto "salon/shared/dto"
	gModel "salon/shared/model"
	"time"

	"github.com/google/uuid"
)

type CreateEntryRequest struct {
	ClientID           string `json:"client_id"            validate:"required,uuid"`
	ServiceID          string `json:"service_id"           validate:"omitempty,uuid"`
	LocationID         string `json:"location_id"          validate:"omitempty,uuid"`
	TeamMemberID       string `json:"team_member_id"       validate:"omitempty,uuid"`
	PreferredDateFrom  string `json:"preferred_date_from"  validate:"omitempty,date"`
	PreferredDateTo    string `json:"preferred_date_to"    validate:"omitempty,date"`
	PreferredTimeStart string `json:"preferred_time_start" validate:"omitempty,hhmm"`
	PreferredTimeEnd   string `json:"preferred_time_end"   validate:"omitempty,hhmm"`
	PriorityScore      int    `json:"priority_score"       validate:"min=0,max=1000"`
	Notes              string `json:"notes"                validate:"omitempty,max=1000"`
}

// ToModel assumes the request passed validation.
func (c *CreateEntryRequest) ToModel(studioID, actor string) model.Entry {
	return model.Entry{
		ID:                 uuid.NewString(),
		StudioID:           studioID,
		ClientID:           c.ClientID,
		ServiceID:          optional(c.ServiceID),
		LocationID:         optional(c.LocationID),
		TeamMemberID:       optional(c.TeamMemberID),
		PreferredDateFrom:  optionalDate(c.PreferredDateFrom),
		PreferredDateTo:    optionalDate(c.PreferredDateTo),
		PreferredTimeStart: optionalTime(c.PreferredTimeStart),
		PreferredTimeEnd:   optionalTime(c.PreferredTimeEnd),
		PriorityScore:      c.PriorityScore,
		IsActive:           true,
		Notes:              c.Notes,
		Metadata:           gModel.NewMetadata(actor),
	}
}

// MatchQuery describes an opening to find waiting clients for.
type MatchQuery struct {
	ServiceID    string `json:"service_id"     validate:"required,uuid"`
	LocationID   string `json:"location_id"    validate:"required,uuid"`
	TeamMemberID string `json:"team_member_id" validate:"required,uuid"`
	Date         string `json:"date"           validate:"required,date"`
	StartTime    string `json:"start_time"     validate:"required,hhmm"`
	EndTime      string `json:"end_time"       validate:"required,hhmm"`
}

func (q *MatchQuery) FromRequest(r *http.Request) {
	values := r.URL.Query()

	q.ServiceID = values.Get("service_id")
	q.LocationID = values.Get("location_id")
	q.TeamMemberID = values.Get("team_member_id")
	q.Date = values.Get("date")
	q.StartTime = values.Get("start_time")
	q.EndTime = values.Get("end_time")
}

type FulfillRequest struct {
	AppointmentID string `json:"appointment_id" validate:"required,uuid"`
}

type EntryResponse struct {
	ID                     string `json:"id"`
	ClientID               string `json:"client_id"`
	ServiceID              string `json:"service_id,omitempty"`
	LocationID             string `json:"location_id,omitempty"`
	TeamMemberID           string `json:"team_member_id,omitempty"`
	PreferredDateFrom      string `json:"preferred_date_from,omitempty"`
	PreferredDateTo        string `json:"preferred_date_to,omitempty"`
	PreferredTimeStart     string `json:"preferred_time_start,omitempty"`
	PreferredTimeEnd       string `json:"preferred_time_end,omitempty"`
	PriorityScore          int    `json:"priority_score"`
	IsActive               bool   `json:"is_active"`
	FulfilledAppointmentID string `json:"fulfilled_appointment_id,omitempty"`
	Notes                  string `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *EntryResponse) FromModel(model model.Entry) {
	r.ID = model.ID
	r.ClientID = model.ClientID
	r.ServiceID = deref(model.ServiceID)
	r.LocationID = deref(model.LocationID)
	r.TeamMemberID = deref(model.TeamMemberID)
	r.PreferredDateFrom = formatDate(model.PreferredDateFrom)
	r.PreferredDateTo = formatDate(model.PreferredDateTo)
	r.PriorityScore = model.PriorityScore
	r.IsActive = model.IsActive
	r.FulfilledAppointmentID = deref(model.FulfilledAppointmentID)
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)

	if model.PreferredTimeStart.Valid {
		r.PreferredTimeStart = model.PreferredTimeStart.Time.String()
	}

	if model.PreferredTimeEnd.Valid {
		r.PreferredTimeEnd = model.PreferredTimeEnd.Time.String()
	}
}

type GetEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

func (r *GetEntriesResponse) FromModels(models []model.Entry) {
	r.Entries = make([]EntryResponse, len(models))
	for i, mod := range models {
		r.Entries[i].FromModel(mod)
	}
}

func optional(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}

func deref(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}

func optionalDate(value string) *time.Time {
	date, err := clock.ParseDate(value)
	if err != nil {
		return nil
	}

	return &date
}

func optionalTime(value string) clock.NullTimeOfDay {
	t, err := clock.ParseTimeOfDay(value)
	if err != nil {
		return clock.NullTimeOfDay{}
	}

	return clock.NullTimeOfDay{Time: t, Valid: true}
}

func formatDate(date *time.Time) string {
	if date == nil {
		return ""
	}

	return clock.FormatDate(*date)
}
