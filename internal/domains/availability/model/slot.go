package model

import (
	"salon/shared/clock"
	"time"
)

// Slot is a bookable service start for one team member at one location.
type Slot struct {
	Date         time.Time       `json:"date"`
	TeamMemberID string          `json:"team_member_id"`
	LocationID   string          `json:"location_id"`
	ServiceID    string          `json:"service_id"`
	Start        clock.TimeOfDay `json:"start"`
	End          clock.TimeOfDay `json:"end"`
	Available    bool            `json:"available"`
}
