package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Email     string   `json:"email" validate:"required,email"`
	Password  string   `json:"password" validate:"required,min=8"`
	Name      string   `json:"name" validate:"required,min=1,max=200"`
	Role      string   `json:"role" validate:"required,oneof=SUPER_ADMIN ENCARGADO_RRHH SUPERVISOR_REGIONES ENCARGADO_CASINO"`
	OfficeIDs []string `json:"office_ids" validate:"omitempty,dive,uuid"`
}

// UpdateUserRequest entrada para actualizar un usuario. Password vacío = no cambiar.
type UpdateUserRequest struct {
	Email     string   `json:"email" validate:"required,email"`
	Password  string   `json:"password" validate:"omitempty,min=8"`
	Name      string   `json:"name" validate:"required,min=1,max=200"`
	Role      string   `json:"role" validate:"required,oneof=SUPER_ADMIN ENCARGADO_RRHH SUPERVISOR_REGIONES ENCARGADO_CASINO"`
	Status    string   `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
	OfficeIDs []string `json:"office_ids" validate:"omitempty,dive,uuid"`
}

// RegisterRequest entrada para registro (auth).
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=200"`
	Role     string `json:"role" validate:"omitempty,oneof=SUPER_ADMIN ENCARGADO_RRHH SUPERVISOR_REGIONES ENCARGADO_CASINO"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	OfficeIDs []string  `json:"office_ids,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse página de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el resumen del usuario. El token viaja además en la
// cookie de sesión httpOnly; se incluye aquí para clientes API no navegador.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
