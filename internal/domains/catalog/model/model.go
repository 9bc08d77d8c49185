package model

import "salon/shared/model"

const (
	TableName  = "services"
	EntityName = "service"

	FieldID       = "id"
	FieldStudioID = "studio_id"
)

const (
	BufferTableName  = "service_buffers"
	BufferEntityName = "service_buffer"

	FieldBufferServiceID = "service_id"
)

// Service is a bookable offering. DurationMinutes is the basis for every end time.
// Price is in the studio currency's minor unit.
type Service struct {
	ID              string `db:"id"`
	StudioID        string `db:"studio_id"`
	Name            string `db:"name"`
	DurationMinutes int    `db:"duration_minutes"`
	Price           int64  `db:"price"`
	Category        string `db:"category"`
	IsActive        bool   `db:"is_active"`
	model.Metadata
}

// ServiceBuffer widens a service's occupied window. Travel only counts between
// two appointments of one team member at different locations.
type ServiceBuffer struct {
	ServiceID      string `db:"service_id"`
	SetupMinutes   int    `db:"setup_minutes"`
	CleanupMinutes int    `db:"cleanup_minutes"`
	TravelMinutes  int    `db:"travel_minutes"`
}

// BookableService is a service together with its buffer; a missing buffer row is all zeros.
type BookableService struct {
	Service
	Buffer ServiceBuffer
}

// OccupiedMinutes is setup + duration + cleanup.
func (b BookableService) OccupiedMinutes() int {
	return b.Buffer.SetupMinutes + b.DurationMinutes + b.Buffer.CleanupMinutes
}
