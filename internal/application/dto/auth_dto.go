package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GrantDTO par (action, subject) permitido para el rol del usuario.
type GrantDTO struct {
	Action  string `json:"action"`
	Subject string `json:"subject"`
}

// LoginResponse token JWT + perfil + permisos efectivos del rol.
type LoginResponse struct {
	Token       string       `json:"token"`
	User        UserResponse `json:"user"`
	Permissions []GrantDTO   `json:"permissions"`
}
