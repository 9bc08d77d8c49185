package dto

import (
	"salon/internal/domains/client/model"
	gModel "salon/shared/model"

	"github.com/google/uuid"
)

type CreateClientRequest struct {
	Name        string            `json:"name"        validate:"required,max=150"`
	Email       string            `json:"email"       validate:"omitempty,email,max=150"`
	Phone       string            `json:"phone"       validate:"omitempty,max=30"`
	Preferences model.Preferences `json:"preferences"`
}

func (c *CreateClientRequest) ToModel(studioID, actor string) model.Client {
	return model.Client{
		ID:          uuid.NewString(),
		StudioID:    studioID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Preferences: c.Preferences,
		Metadata:    gModel.NewMetadata(actor),
	}
}

type ClientResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Email       string            `json:"email,omitempty"`
	Phone       string            `json:"phone,omitempty"`
	Preferences model.Preferences `json:"preferences"`
}

func (c *ClientResponse) FromModel(model model.Client) {
	c.ID = model.ID
	c.Name = model.Name
	c.Email = model.Email
	c.Phone = model.Phone
	c.Preferences = model.Preferences
}
