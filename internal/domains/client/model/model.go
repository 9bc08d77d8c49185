package model

import (
	"salon/shared/model"
)

const (
	TableName  = "clients"
	EntityName = "client"

	FieldID       = "id"
	FieldStudioID = "studio_id"
)

type Client struct {
	ID          string      `db:"id"`
	StudioID    string      `db:"studio_id"`
	Name        string      `db:"name"`
	Email       string      `db:"email"`
	Phone       string      `db:"phone"`
	Preferences Preferences `db:"preferences"`
	model.Metadata
}
