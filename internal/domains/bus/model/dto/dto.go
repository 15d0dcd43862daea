package dto

import (
	"summitbooking/internal/domains/bus/model"
	"summitbooking/shared"
)

type CreateBusRequest struct {
	BusTypeID          int64  `json:"bus_type_id"         validate:"required"`
	RegistrationNumber string `json:"registration_number" validate:"required"`
	Model              string `json:"model"               validate:"required"`
	Status             string `json:"status"              validate:"omitempty,oneof=Active Maintenance Retired"`
}

func (c *CreateBusRequest) ToModel() model.Bus {
	status := c.Status
	if status == "" {
		status = "Active"
	}

	return model.Bus{
		BusTypeID:          c.BusTypeID,
		RegistrationNumber: c.RegistrationNumber,
		Model:              c.Model,
		Status:             status,
	}
}

type BusResponse struct {
	ID                 int64  `json:"id"`
	BusTypeID          int64  `json:"bus_type_id"`
	RegistrationNumber string `json:"registration_number"`
	Model              string `json:"model"`
	Status             string `json:"status"`
	TypeName           string `json:"type_name"`
	Capacity           int    `json:"capacity"`
}

func (r *BusResponse) FromModel(model model.Bus) {
	r.ID = model.ID
	r.BusTypeID = model.BusTypeID
	r.RegistrationNumber = model.RegistrationNumber
	r.Model = model.Model
	r.Status = model.Status
	r.TypeName = model.TypeName
	r.Capacity = model.Capacity
}

type GetBusesResponse struct {
	Buses     []BusResponse `json:"buses"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (r *GetBusesResponse) FromModels(models []model.Bus, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Buses = make([]BusResponse, len(models))
	for i, mod := range models {
		r.Buses[i].FromModel(mod)
	}
}

type BusTypeResponse struct {
	ID          int64  `json:"id"`
	TypeName    string `json:"type_name"`
	Capacity    int    `json:"capacity"`
	Description string `json:"description,omitempty"`
}

func (r *BusTypeResponse) FromModel(model model.BusType) {
	r.ID = model.ID
	r.TypeName = model.TypeName
	r.Capacity = model.Capacity

	if model.Description != nil {
		r.Description = *model.Description
	}
}
