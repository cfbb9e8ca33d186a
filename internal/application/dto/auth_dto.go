package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el token JWT firmado. El mismo token viaja además
// en una cookie http-only que pone el handler.
type LoginResponse struct {
	Token string `json:"token"`
}

// UserProfile campos públicos de un usuario (nunca el hash de contraseña).
type UserProfile struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone,omitempty"`
	SystemRole *string `json:"systemRole"` // null para usuarios de cliente
}

// ProfileResponse salida de GET /auth/me.
type ProfileResponse struct {
	User UserProfile `json:"user"`
}
