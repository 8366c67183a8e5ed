package dto

import "innovated/internal/model"

// LoginDTO is used for incoming login requests
type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterDTO is used for incoming registration requests
type RegisterDTO struct {
	Username string  `json:"username" validate:"required,min=3"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	FullName *string `json:"fullName,omitempty" validate:"omitempty"`
}

// ToModel builds the domain user a registration request describes. ID and
// CreatedAt are left for the storage layer to assign.
func (d *RegisterDTO) ToModel() *model.User {
	return &model.User{
		Username: d.Username,
		Password: d.Password,
		Email:    d.Email,
		FullName: d.FullName,
	}
}

// UserProjectionDTO is the sanitized user shape returned in API responses.
// The password never appears here.
type UserProjectionDTO struct {
	ID       int     `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	FullName *string `json:"fullName"`
}

// AuthResponseDTO wraps a projection with a human-readable outcome message
type AuthResponseDTO struct {
	Message string            `json:"message"`
	User    UserProjectionDTO `json:"user"`
}

// NewUserProjection maps a domain user to its sanitized projection
func NewUserProjection(u *model.User) UserProjectionDTO {
	return UserProjectionDTO{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName,
	}
}
