package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	HistoryTableName  = "appointment_history"
	HistoryEntityName = "appointment_history"

	FieldHistoryID            = "id"
	FieldHistoryAppointmentID = "appointment_id"
	FieldHistoryCreatedAt     = "created_at"
)

type ChangeType string

const (
	ChangeTypeCreated       ChangeType = "created"
	ChangeTypeUpdated       ChangeType = "updated"
	ChangeTypeCancelled     ChangeType = "cancelled"
	ChangeTypeRescheduled   ChangeType = "rescheduled"
	ChangeTypeStatusChanged ChangeType = "status_changed"
)

// Values is a snapshot of appointment fields stored as jsonb.
type Values map[string]any

func (v Values) Value() (driver.Value, error) {
	if v == nil {
		return []byte("{}"), nil
	}

	return json.Marshal(v) //nolint:wrapcheck
}

func (v *Values) Scan(src any) error {
	var raw []byte

	switch value := src.(type) {
	case nil:
		*v = nil

		return nil
	case []byte:
		raw = value
	case string:
		raw = []byte(value)
	default:
		return fmt.Errorf("cannot scan %T into history values", src)
	}

	return json.Unmarshal(raw, v) //nolint:wrapcheck
}

// History is an append-only record of one change to an appointment.
type History struct {
	ID            string     `db:"id"`
	AppointmentID string     `db:"appointment_id"`
	ChangeType    ChangeType `db:"change_type"`
	OldValues     Values     `db:"old_values"`
	NewValues     Values     `db:"new_values"`
	ChangedBy     string     `db:"changed_by"`
	Notes         string     `db:"notes"`
	CreatedAt     time.Time  `db:"created_at"`
}
