package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token de sesión y datos del usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CambiarPasswordRequest cambio de contraseña del propio usuario.
type CambiarPasswordRequest struct {
	Actual       string `json:"actual" validate:"required"`
	Nueva        string `json:"nueva" validate:"required,min=6"`
	Confirmacion string `json:"confirmacion" validate:"required"`
}

// AdminPasswordRequest cambio de contraseña asistido por un administrador.
type AdminPasswordRequest struct {
	Nueva        string `json:"nueva" validate:"required,min=6"`
	Confirmacion string `json:"confirmacion" validate:"required"`
}
