package dto

import (
	"net/http"
	"salon/internal/domains/appointment/model"
	clientDto "salon/internal/domains/client/model/dto"
	"salon/shared/clock"
	gDto "salon/shared/dto"
	"strings"
	"time"
)

// BookRequest books one service. A new client may be registered inline when
// client_id is not known yet.
type BookRequest struct {
	ClientID      string                         `json:"client_id"      validate:"omitempty,uuid"`
	Client        *clientDto.CreateClientRequest `json:"client"         validate:"omitempty"`
	TeamMemberID  string                         `json:"team_member_id" validate:"required,uuid"`
	ServiceID     string                         `json:"service_id"     validate:"required,uuid"`
	LocationID    string                         `json:"location_id"    validate:"omitempty,uuid"`
	Date          string                         `json:"date"           validate:"required,date"`
	StartTime     string                         `json:"start_time"     validate:"required,hhmm"`
	BookingSource string                         `json:"booking_source" validate:"omitempty,oneof=online phone walk_in staff"`
	Notes         string                         `json:"notes"          validate:"omitempty,max=1000"`
}

// RescheduleRequest moves an appointment. Empty ids keep the current value.
type RescheduleRequest struct {
	Date         string `json:"date"           validate:"required,date"`
	StartTime    string `json:"start_time"     validate:"required,hhmm"`
	TeamMemberID string `json:"team_member_id" validate:"omitempty,uuid"`
	LocationID   string `json:"location_id"    validate:"omitempty,uuid"`
	ServiceID    string `json:"service_id"     validate:"omitempty,uuid"`
	Notes        string `json:"notes"          validate:"omitempty,max=1000"`
}

type TransitionRequest struct {
	Notes string `json:"notes" validate:"omitempty,max=1000"`
}

type CancelRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

// PaymentRequest amounts are in the studio currency's minor unit.
type PaymentRequest struct {
	Amount int64  `json:"amount" validate:"required,min=1"`
	Notes  string `json:"notes"  validate:"omitempty,max=500"`
}

// ListQuery is read from the query string of the calendar listing.
type ListQuery struct {
	From         string `json:"from"           validate:"required,date"`
	To           string `json:"to"             validate:"required,date"`
	Status       string `json:"status"         validate:"omitempty"`
	TeamMemberID string `json:"team_member_id" validate:"omitempty,uuid"`
	LocationID   string `json:"location_id"    validate:"omitempty,uuid"`
}

func (q *ListQuery) FromRequest(r *http.Request) {
	values := r.URL.Query()

	q.From = values.Get("from")
	q.To = values.Get("to")
	q.Status = values.Get("status")
	q.TeamMemberID = values.Get("team_member_id")
	q.LocationID = values.Get("location_id")

	if q.To == "" {
		q.To = q.From
	}
}

// Statuses splits the comma separated status filter.
func (q *ListQuery) Statuses() []model.Status {
	if q.Status == "" {
		return nil
	}

	parts := strings.Split(q.Status, ",")
	res := make([]model.Status, 0, len(parts))

	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, model.Status(part))
		}
	}

	return res
}

type AppointmentResponse struct {
	ID                 string `json:"id"`
	ClientID           string `json:"client_id,omitempty"`
	TeamMemberID       string `json:"team_member_id"`
	ServiceID          string `json:"service_id"`
	LocationID         string `json:"location_id"`
	Date               string `json:"date"`
	StartTime          string `json:"start_time"`
	EndTime            string `json:"end_time"`
	SetupMinutes       int    `json:"setup_minutes"`
	CleanupMinutes     int    `json:"cleanup_minutes"`
	Status             string `json:"status"`
	PaymentStatus      string `json:"payment_status"`
	TotalPrice         int64  `json:"total_price"`
	PaidAmount         int64  `json:"paid_amount"`
	BookingSource      string `json:"booking_source"`
	Notes              string `json:"notes,omitempty"`
	CancellationReason string `json:"cancellation_reason,omitempty"`
	ArrivedAt          string `json:"arrived_at,omitempty"`
	StartedAt          string `json:"started_at,omitempty"`
	CompletedAt        string `json:"completed_at,omitempty"`
	CancelledAt        string `json:"cancelled_at,omitempty"`
	ConfirmationSentAt string `json:"confirmation_sent_at,omitempty"`
	ReminderSentAt     string `json:"reminder_sent_at,omitempty"`
	gDto.Metadata
}

func (r *AppointmentResponse) FromModel(model model.Appointment) {
	r.ID = model.ID
	r.TeamMemberID = model.TeamMemberID
	r.ServiceID = model.ServiceID
	r.LocationID = model.LocationID
	r.Date = clock.FormatDate(model.AppointmentDate)
	r.StartTime = model.StartTime.String()
	r.EndTime = model.EndTime.String()
	r.SetupMinutes = model.SetupMinutes
	r.CleanupMinutes = model.CleanupMinutes
	r.Status = string(model.Status)
	r.PaymentStatus = string(model.PaymentStatus)
	r.TotalPrice = model.TotalPrice
	r.PaidAmount = model.PaidAmount
	r.BookingSource = string(model.BookingSource)
	r.Notes = model.Notes
	r.CancellationReason = model.CancellationReason
	r.ArrivedAt = formatTime(model.ArrivedAt)
	r.StartedAt = formatTime(model.StartedAt)
	r.CompletedAt = formatTime(model.CompletedAt)
	r.CancelledAt = formatTime(model.CancelledAt)
	r.ConfirmationSentAt = formatTime(model.ConfirmationSentAt)
	r.ReminderSentAt = formatTime(model.ReminderSentAt)
	r.Metadata.FromModel(model.Metadata)

	if model.ClientID != nil {
		r.ClientID = *model.ClientID
	}
}

type GetAppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

func (r *GetAppointmentsResponse) FromModels(models []model.Appointment) {
	r.Appointments = make([]AppointmentResponse, len(models))
	for i, mod := range models {
		r.Appointments[i].FromModel(mod)
	}
}

type HistoryResponse struct {
	ID         string         `json:"id"`
	ChangeType string         `json:"change_type"`
	OldValues  map[string]any `json:"old_values,omitempty"`
	NewValues  map[string]any `json:"new_values,omitempty"`
	ChangedBy  string         `json:"changed_by"`
	Notes      string         `json:"notes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

type GetHistoryResponse struct {
	History []HistoryResponse `json:"history"`
}

func (r *GetHistoryResponse) FromModels(models []model.History) {
	r.History = make([]HistoryResponse, len(models))
	for i, mod := range models {
		r.History[i] = HistoryResponse{
			ID:         mod.ID,
			ChangeType: string(mod.ChangeType),
			OldValues:  mod.OldValues,
			NewValues:  mod.NewValues,
			ChangedBy:  mod.ChangedBy,
			Notes:      mod.Notes,
			CreatedAt:  mod.CreatedAt,
		}
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format(time.RFC3339)
}
