package model

import (
	"salon/shared/clock"
	"time"
)

type EventType string

const (
	EventBooked       EventType = "appointment.booked"
	EventRescheduled  EventType = "appointment.rescheduled"
	EventStatusChange EventType = "appointment.status_changed"
	EventCancelled    EventType = "appointment.cancelled"
	EventPaid         EventType = "appointment.payment_recorded"
)

// Event is published after a committed change so the notification dispatcher can
// react. Consumers key on AppointmentID; delivery is at most once.
type Event struct {
	Type          EventType `json:"type"`
	AppointmentID string    `json:"appointment_id"`
	StudioID      string    `json:"studio_id"`
	ClientID      string    `json:"client_id,omitempty"`
	TeamMemberID  string    `json:"team_member_id"`
	LocationID    string    `json:"location_id"`
	ServiceID     string    `json:"service_id"`
	Date          string    `json:"appointment_date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	Status        Status    `json:"status"`
	ActorID       string    `json:"actor_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func NewEvent(eventType EventType, appointment Appointment, actorID string, at time.Time) Event {
	event := Event{
		Type:          eventType,
		AppointmentID: appointment.ID,
		StudioID:      appointment.StudioID,
		TeamMemberID:  appointment.TeamMemberID,
		LocationID:    appointment.LocationID,
		ServiceID:     appointment.ServiceID,
		Date:          clock.FormatDate(appointment.AppointmentDate),
		StartTime:     appointment.StartTime.String(),
		EndTime:       appointment.EndTime.String(),
		Status:        appointment.Status,
		ActorID:       actorID,
		OccurredAt:    at,
	}

	if appointment.ClientID != nil {
		event.ClientID = *appointment.ClientID
	}

	return event
}
