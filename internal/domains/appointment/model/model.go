package model

import (
	"salon/internal/domains/availability/engine"
	"salon/shared/clock"
	"salon/shared/model"
	"time"
)

const (
	TableName  = "appointments"
	EntityName = "appointment"

	FieldID                 = "id"
	FieldStudioID           = "studio_id"
	FieldTeamMemberID       = "team_member_id"
	FieldLocationID         = "location_id"
	FieldServiceID          = "service_id"
	FieldAppointmentDate    = "appointment_date"
	FieldStartTime          = "start_time"
	FieldEndTime            = "end_time"
	FieldStatus             = "status"
	FieldPaymentStatus      = "payment_status"
	FieldPaidAmount         = "paid_amount"
	FieldCancellationReason = "cancellation_reason"
	FieldArrivedAt          = "arrived_at"
	FieldStartedAt          = "started_at"
	FieldCompletedAt        = "completed_at"
	FieldCancelledAt        = "cancelled_at"
	FieldConfirmationSentAt = "confirmation_sent_at"
	FieldReminderSentAt     = "reminder_sent_at"
	FieldVersion            = "version"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPartial  PaymentStatus = "partial"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// PaymentStatusFor derives the payment status from what has been paid so far.
func PaymentStatusFor(paid, total int64) PaymentStatus {
	switch {
	case total > 0 && paid <= 0:
		return PaymentStatusUnpaid
	case paid < total:
		return PaymentStatusPartial
	default:
		return PaymentStatusPaid
	}
}

type BookingSource string

const (
	BookingSourceOnline BookingSource = "online"
	BookingSourcePhone  BookingSource = "phone"
	BookingSourceWalkIn BookingSource = "walk_in"
	BookingSourceStaff  BookingSource = "staff"
)

// Appointment is one booked service. EndTime is always StartTime plus the service
// duration; the buffers are copied from the service when the slot is taken.
type Appointment struct {
	ID                 string          `db:"id"`
	StudioID           string          `db:"studio_id"`
	ClientID           *string         `db:"client_id"`
	TeamMemberID       string          `db:"team_member_id"`
	ServiceID          string          `db:"service_id"`
	LocationID         string          `db:"location_id"`
	AppointmentDate    time.Time       `db:"appointment_date"`
	StartTime          clock.TimeOfDay `db:"start_time"`
	EndTime            clock.TimeOfDay `db:"end_time"`
	SetupMinutes       int             `db:"setup_minutes"`
	CleanupMinutes     int             `db:"cleanup_minutes"`
	TravelMinutes      int             `db:"travel_minutes"`
	Status             Status          `db:"status"`
	PaymentStatus      PaymentStatus   `db:"payment_status"`
	TotalPrice         int64           `db:"total_price"`
	PaidAmount         int64           `db:"paid_amount"`
	BookingSource      BookingSource   `db:"booking_source"`
	Notes              string          `db:"notes"`
	CancellationReason string          `db:"cancellation_reason"`
	ArrivedAt          *time.Time      `db:"arrived_at"`
	StartedAt          *time.Time      `db:"started_at"`
	CompletedAt        *time.Time      `db:"completed_at"`
	CancelledAt        *time.Time      `db:"cancelled_at"`
	ConfirmationSentAt *time.Time      `db:"confirmation_sent_at"`
	ReminderSentAt     *time.Time      `db:"reminder_sent_at"`
	Version            int             `db:"version"`
	model.Metadata
}

// Occupancy is the appointment as the conflict detector sees it.
func (a Appointment) Occupancy() engine.Occupancy {
	return engine.Occupancy{
		AppointmentID:  a.ID,
		LocationID:     a.LocationID,
		Service:        clock.Interval{Start: a.StartTime, End: a.EndTime},
		SetupMinutes:   a.SetupMinutes,
		CleanupMinutes: a.CleanupMinutes,
		TravelMinutes:  a.TravelMinutes,
	}
}

// Occupancies keeps the appointments that hold their time and converts them.
func Occupancies(appointments []Appointment) []engine.Occupancy {
	res := make([]engine.Occupancy, 0, len(appointments))

	for _, a := range appointments {
		if a.Status.Active() {
			res = append(res, a.Occupancy())
		}
	}

	return res
}

// Slot captures the fields a reschedule may change, in history form.
func (a Appointment) Slot() Values {
	return Values{
		"appointment_date": clock.FormatDate(a.AppointmentDate),
		"start_time":       a.StartTime.String(),
		"end_time":         a.EndTime.String(),
		"team_member_id":   a.TeamMemberID,
		"location_id":      a.LocationID,
		"service_id":       a.ServiceID,
	}
}

// Filter narrows a date range query. Empty fields do not filter.
type Filter struct {
	From         time.Time
	To           time.Time
	Statuses     []Status
	TeamMemberID string
	LocationID   string
}
