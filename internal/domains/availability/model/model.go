package model

import (
	"salon/shared/clock"
	"salon/shared/model"
	"time"
)

const (
	RuleTableName  = "availability_rules"
	RuleEntityName = "availability_rule"

	FieldRuleID           = "id"
	FieldRuleStudioID     = "studio_id"
	FieldRuleTeamMemberID = "team_member_id"
	FieldRuleLocationID   = "location_id"
	FieldRuleServiceID    = "service_id"
	FieldRuleDayOfWeek    = "day_of_week"
	FieldRuleStartTime    = "start_time"
)

const (
	BlockTableName  = "blocked_times"
	BlockEntityName = "blocked_time"

	FieldBlockID              = "id"
	FieldBlockStudioID        = "studio_id"
	FieldBlockTeamMemberID    = "team_member_id"
	FieldBlockLocationID      = "location_id"
	FieldBlockStartDate       = "start_date"
	FieldBlockEndDate         = "end_date"
	FieldBlockRecurrence      = "recurrence"
	FieldBlockRecurrenceUntil = "recurrence_until"
)

type RuleType string

const (
	RuleTypeWorkingHours RuleType = "working_hours"
	RuleTypeBreak        RuleType = "break"
	RuleTypeOverride     RuleType = "override"
	RuleTypeHoliday      RuleType = "holiday"
)

// Level is how specific a rule is. Higher levels override lower ones.
type Level int

const (
	LevelStudio Level = iota
	LevelTeamMember
	LevelLocation
	LevelService
)

// Precedence lists rule levels from least to most specific.
var Precedence = []Level{LevelStudio, LevelTeamMember, LevelLocation, LevelService}

func (l Level) String() string {
	switch l {
	case LevelStudio:
		return "studio"
	case LevelTeamMember:
		return "team_member"
	case LevelLocation:
		return "location"
	case LevelService:
		return "service"
	default:
		return "unknown"
	}
}

// Scope identifies whose availability is being asked for. Empty fields match only
// rules and blocks that leave the same field unset.
type Scope struct {
	TeamMemberID string `json:"team_member_id"`
	LocationID   string `json:"location_id"`
	ServiceID    string `json:"service_id,omitempty"`
}

// AvailabilityRule opens or closes a weekly time window. Nil scope fields mean
// the rule applies to every member, location or service.
type AvailabilityRule struct {
	ID             string          `db:"id"`
	StudioID       string          `db:"studio_id"`
	TeamMemberID   *string         `db:"team_member_id"`
	LocationID     *string         `db:"location_id"`
	ServiceID      *string         `db:"service_id"`
	RuleType       RuleType        `db:"rule_type"`
	DayOfWeek      int             `db:"day_of_week"`
	StartTime      clock.TimeOfDay `db:"start_time"`
	EndTime        clock.TimeOfDay `db:"end_time"`
	IsAvailable    bool            `db:"is_available"`
	EffectiveFrom  *time.Time      `db:"effective_from"`
	EffectiveUntil *time.Time      `db:"effective_until"`
	model.Metadata
}

// Level is the most specific scope field the rule sets.
func (r AvailabilityRule) Level() Level {
	switch {
	case r.ServiceID != nil:
		return LevelService
	case r.LocationID != nil:
		return LevelLocation
	case r.TeamMemberID != nil:
		return LevelTeamMember
	default:
		return LevelStudio
	}
}

func (r AvailabilityRule) Interval() clock.Interval {
	return clock.Interval{Start: r.StartTime, End: r.EndTime}
}

// AppliesTo reports whether the rule is in effect for scope on date.
func (r AvailabilityRule) AppliesTo(scope Scope, date time.Time) bool {
	if int(date.Weekday()) != r.DayOfWeek {
		return false
	}

	date = clock.DateOf(date)

	if r.EffectiveFrom != nil && date.Before(clock.DateOf(*r.EffectiveFrom)) {
		return false
	}

	if r.EffectiveUntil != nil && date.After(clock.DateOf(*r.EffectiveUntil)) {
		return false
	}

	return matches(r.TeamMemberID, scope.TeamMemberID) &&
		matches(r.LocationID, scope.LocationID) &&
		matches(r.ServiceID, scope.ServiceID)
}

func matches(field *string, value string) bool {
	return field == nil || *field == value
}
