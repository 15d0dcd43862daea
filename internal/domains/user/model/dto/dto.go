package dto

import (
	"summitbooking/internal/domains/user/model"
	"summitbooking/shared"
)

type UpdateProfileRequest struct {
	FullName string `db:"full_name" json:"full_name" validate:"required,fullname"`
	Email    string `db:"email"     json:"email"     validate:"required,email"`
	Phone    string `db:"phone"     json:"phone"     validate:"required,phone"`
}

type UserResponse struct {
	ID        int64  `json:"id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Role = model.Role
	r.CreatedAt = model.CreatedAt
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
