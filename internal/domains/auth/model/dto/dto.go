package dto

import (
	userModel "summitbooking/internal/domains/user/model"
	"summitbooking/shared/constant"
	"summitbooking/shared/timezone"
)

type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required,fullname"`
	Email    string `json:"email"     validate:"required,email"`
	Phone    string `json:"phone"     validate:"required,phone"`
	Password string `json:"password"  validate:"required,min=6"`
	Role     string `json:"role"      validate:"omitempty,oneof=Clerk Admin"`
}

func (r *RegisterRequest) ToUserModel(hashedPassword string) userModel.User {
	role := r.Role
	if role == "" {
		role = constant.RoleClerk
	}

	return userModel.User{
		FullName:  r.FullName,
		Email:     r.Email,
		Phone:     r.Phone,
		Password:  hashedPassword,
		Role:      role,
		CreatedAt: timezone.Now().Format(constant.DateTimeFormat),
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	UserID   int64  `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (l *LoginResponse) FromModel(user userModel.User) {
	l.UserID = user.ID
	l.FullName = user.FullName
	l.Email = user.Email
	l.Role = user.Role
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=6"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required,min=6"`
}
