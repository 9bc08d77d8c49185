package dto

import (
	"net/http"
	"salon/internal/domains/availability/model"
	"salon/shared/clock"
	gModel "salon/shared/model"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type CreateRuleRequest struct {
	TeamMemberID   string `json:"team_member_id"  validate:"omitempty,uuid"`
	LocationID     string `json:"location_id"     validate:"omitempty,uuid"`
	ServiceID      string `json:"service_id"      validate:"omitempty,uuid"`
	RuleType       string `json:"rule_type"       validate:"required,oneof=working_hours break override holiday"`
	DayOfWeek      *int   `json:"day_of_week"     validate:"required,min=0,max=6"`
	StartTime      string `json:"start_time"      validate:"required,hhmm"`
	EndTime        string `json:"end_time"        validate:"required,hhmm"`
	IsAvailable    *bool  `json:"is_available"    validate:"required"`
	EffectiveFrom  string `json:"effective_from"  validate:"omitempty,date"`
	EffectiveUntil string `json:"effective_until" validate:"omitempty,date"`
}

// ToModel assumes the request passed validation.
func (c *CreateRuleRequest) ToModel(studioID, actor string) model.AvailabilityRule {
	return model.AvailabilityRule{
		ID:             uuid.NewString(),
		StudioID:       studioID,
		TeamMemberID:   optional(c.TeamMemberID),
		LocationID:     optional(c.LocationID),
		ServiceID:      optional(c.ServiceID),
		RuleType:       model.RuleType(c.RuleType),
		DayOfWeek:      *c.DayOfWeek,
		StartTime:      clock.MustParse(c.StartTime),
		EndTime:        clock.MustParse(c.EndTime),
		IsAvailable:    *c.IsAvailable,
		EffectiveFrom:  optionalDate(c.EffectiveFrom),
		EffectiveUntil: optionalDate(c.EffectiveUntil),
		Metadata:       gModel.NewMetadata(actor),
	}
}

type RuleResponse struct {
	ID             string `json:"id"`
	Level          string `json:"level"`
	TeamMemberID   string `json:"team_member_id,omitempty"`
	LocationID     string `json:"location_id,omitempty"`
	ServiceID      string `json:"service_id,omitempty"`
	RuleType       string `json:"rule_type"`
	DayOfWeek      int    `json:"day_of_week"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	IsAvailable    bool   `json:"is_available"`
	EffectiveFrom  string `json:"effective_from,omitempty"`
	EffectiveUntil string `json:"effective_until,omitempty"`
}

func (r *RuleResponse) FromModel(model model.AvailabilityRule) {
	r.ID = model.ID
	r.Level = model.Level().String()
	r.TeamMemberID = deref(model.TeamMemberID)
	r.LocationID = deref(model.LocationID)
	r.ServiceID = deref(model.ServiceID)
	r.RuleType = string(model.RuleType)
	r.DayOfWeek = model.DayOfWeek
	r.StartTime = model.StartTime.String()
	r.EndTime = model.EndTime.String()
	r.IsAvailable = model.IsAvailable
	r.EffectiveFrom = formatDate(model.EffectiveFrom)
	r.EffectiveUntil = formatDate(model.EffectiveUntil)
}

type GetRulesResponse struct {
	Rules []RuleResponse `json:"rules"`
}

func (g *GetRulesResponse) FromModels(models []model.AvailabilityRule) {
	g.Rules = make([]RuleResponse, len(models))
	for i, mod := range models {
		g.Rules[i].FromModel(mod)
	}
}

type CreateBlockedTimeRequest struct {
	TeamMemberID    string `json:"team_member_id"   validate:"omitempty,uuid"`
	LocationID      string `json:"location_id"      validate:"omitempty,uuid"`
	StartDate       string `json:"start_date"       validate:"required,date"`
	EndDate         string `json:"end_date"         validate:"required,date"`
	StartTime       string `json:"start_time"       validate:"omitempty,hhmm"`
	EndTime         string `json:"end_time"         validate:"omitempty,hhmm"`
	IsAllDay        bool   `json:"is_all_day"`
	BlockType       string `json:"block_type"       validate:"required,oneof=vacation sick personal training maintenance other"`
	Reason          string `json:"reason"           validate:"omitempty,max=500"`
	Recurrence      string `json:"recurrence"       validate:"omitempty,oneof=none daily weekly"`
	RecurrenceUntil string `json:"recurrence_until" validate:"omitempty,date"`
}

// ToModel assumes the request passed validation.
func (c *CreateBlockedTimeRequest) ToModel(studioID, actor string) model.BlockedTime {
	recurrence := model.Recurrence(c.Recurrence)
	if recurrence == "" {
		recurrence = model.RecurrenceNone
	}

	block := model.BlockedTime{
		ID:              uuid.NewString(),
		StudioID:        studioID,
		TeamMemberID:    optional(c.TeamMemberID),
		LocationID:      optional(c.LocationID),
		StartDate:       *optionalDate(c.StartDate),
		EndDate:         *optionalDate(c.EndDate),
		IsAllDay:        c.IsAllDay,
		BlockType:       model.BlockType(c.BlockType),
		Reason:          c.Reason,
		Recurrence:      recurrence,
		RecurrenceUntil: optionalDate(c.RecurrenceUntil),
		Metadata:        gModel.NewMetadata(actor),
	}

	if !c.IsAllDay {
		block.StartTime = optionalTime(c.StartTime)
		block.EndTime = optionalTime(c.EndTime)
	}

	return block
}

type BlockedTimeResponse struct {
	ID              string `json:"id"`
	TeamMemberID    string `json:"team_member_id,omitempty"`
	LocationID      string `json:"location_id,omitempty"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	StartTime       string `json:"start_time,omitempty"`
	EndTime         string `json:"end_time,omitempty"`
	IsAllDay        bool   `json:"is_all_day"`
	BlockType       string `json:"block_type"`
	Reason          string `json:"reason,omitempty"`
	Recurrence      string `json:"recurrence"`
	RecurrenceUntil string `json:"recurrence_until,omitempty"`
}

func (b *BlockedTimeResponse) FromModel(model model.BlockedTime) {
	b.ID = model.ID
	b.TeamMemberID = deref(model.TeamMemberID)
	b.LocationID = deref(model.LocationID)
	b.StartDate = clock.FormatDate(model.StartDate)
	b.EndDate = clock.FormatDate(model.EndDate)
	b.IsAllDay = model.IsAllDay
	b.BlockType = string(model.BlockType)
	b.Reason = model.Reason
	b.Recurrence = string(model.Recurrence)
	b.RecurrenceUntil = formatDate(model.RecurrenceUntil)

	if model.StartTime.Valid {
		b.StartTime = model.StartTime.Time.String()
	}

	if model.EndTime.Valid {
		b.EndTime = model.EndTime.Time.String()
	}
}

type GetBlockedTimesResponse struct {
	BlockedTimes []BlockedTimeResponse `json:"blocked_times"`
}

func (g *GetBlockedTimesResponse) FromModels(models []model.BlockedTime) {
	g.BlockedTimes = make([]BlockedTimeResponse, len(models))
	for i, mod := range models {
		g.BlockedTimes[i].FromModel(mod)
	}
}

// BlockedTimeQuery lists blocks touching [from, to].
type BlockedTimeQuery struct {
	From string `json:"from" validate:"required,date"`
	To   string `json:"to"   validate:"required,date"`
}

func (q *BlockedTimeQuery) FromRequest(r *http.Request) {
	values := r.URL.Query()

	q.From = values.Get("from")
	q.To = values.Get("to")

	if q.To == "" {
		q.To = q.From
	}
}

// SlotQuery is read from the query string of the slot search.
type SlotQuery struct {
	ServiceID    string `json:"service_id"     validate:"required,uuid"`
	TeamMemberID string `json:"team_member_id" validate:"omitempty,uuid"`
	LocationID   string `json:"location_id"    validate:"omitempty,uuid"`
	StartDate    string `json:"start_date"     validate:"required,date"`
	EndDate      string `json:"end_date"       validate:"required,date"`
	StepMinutes  int    `json:"step_minutes"   validate:"omitempty,min=5,max=240"`
}

func (q *SlotQuery) FromRequest(r *http.Request) {
	values := r.URL.Query()

	q.ServiceID = values.Get("service_id")
	q.TeamMemberID = values.Get("team_member_id")
	q.LocationID = values.Get("location_id")
	q.StartDate = values.Get("start_date")
	q.EndDate = values.Get("end_date")

	if q.EndDate == "" {
		q.EndDate = q.StartDate
	}

	if step, err := strconv.Atoi(values.Get("step_minutes")); err == nil {
		q.StepMinutes = step
	}
}

type SlotResponse struct {
	Date         string `json:"date"`
	Start        string `json:"start_time"`
	End          string `json:"end_time"`
	TeamMemberID string `json:"team_member_id"`
	LocationID   string `json:"location_id"`
	ServiceID    string `json:"service_id"`
	Available    bool   `json:"available"`
}

func (s *SlotResponse) FromModel(model model.Slot) {
	s.Date = clock.FormatDate(model.Date)
	s.Start = model.Start.String()
	s.End = model.End.String()
	s.TeamMemberID = model.TeamMemberID
	s.LocationID = model.LocationID
	s.ServiceID = model.ServiceID
	s.Available = model.Available
}

type GetSlotsResponse struct {
	Slots []SlotResponse `json:"slots"`
}

func (g *GetSlotsResponse) FromModels(models []model.Slot) {
	g.Slots = make([]SlotResponse, len(models))
	for i, mod := range models {
		g.Slots[i].FromModel(mod)
	}
}

type OpenIntervalsQuery struct {
	TeamMemberID string `json:"team_member_id" validate:"required,uuid"`
	LocationID   string `json:"location_id"    validate:"omitempty,uuid"`
	ServiceID    string `json:"service_id"     validate:"omitempty,uuid"`
	Date         string `json:"date"           validate:"required,date"`
}

func (q *OpenIntervalsQuery) FromRequest(r *http.Request) {
	values := r.URL.Query()

	q.TeamMemberID = values.Get("team_member_id")
	q.LocationID = values.Get("location_id")
	q.ServiceID = values.Get("service_id")
	q.Date = values.Get("date")
}

type IntervalResponse struct {
	Start string `json:"start_time"`
	End   string `json:"end_time"`
}

type OpenIntervalsResponse struct {
	Date         string             `json:"date"`
	TeamMemberID string             `json:"team_member_id"`
	LocationID   string             `json:"location_id"`
	Intervals    []IntervalResponse `json:"intervals"`
}

func (o *OpenIntervalsResponse) FromIntervals(intervals []clock.Interval) {
	o.Intervals = make([]IntervalResponse, len(intervals))
	for i, in := range intervals {
		o.Intervals[i] = IntervalResponse{Start: in.Start.String(), End: in.End.String()}
	}
}

// ConflictQuery asks whether a team member is free for [start, end) on date.
type ConflictQuery struct {
	TeamMemberID         string `json:"team_member_id"         validate:"required,uuid"`
	LocationID           string `json:"location_id"            validate:"omitempty,uuid"`
	ServiceID            string `json:"service_id"             validate:"omitempty,uuid"`
	ExcludeAppointmentID string `json:"exclude_appointment_id" validate:"omitempty,uuid"`
	Date                 string `json:"date"                   validate:"required,date"`
	StartTime            string `json:"start_time"             validate:"required,hhmm"`
	EndTime              string `json:"end_time"               validate:"required,hhmm"`
}

func (q *ConflictQuery) FromRequest(r *http.Request) {
	values := r.URL.Query()

	q.TeamMemberID = values.Get("team_member_id")
	q.LocationID = values.Get("location_id")
	q.ServiceID = values.Get("service_id")
	q.ExcludeAppointmentID = values.Get("exclude_appointment_id")
	q.Date = values.Get("date")
	q.StartTime = values.Get("start_time")
	q.EndTime = values.Get("end_time")
}

type ConflictResponse struct {
	Conflict                 bool   `json:"conflict"`
	ConflictingAppointmentID string `json:"conflicting_appointment_id,omitempty"`
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
	if value == "" {
		return nil
	}

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
