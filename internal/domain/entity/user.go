package entity

import "time"

// Estados válidos para User.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// User representa un usuario del sistema. Las credenciales viven en el
// proveedor de identidad; aquí solo perfil, rol y metadatos.
type User struct {
	ID           string
	Username     string
	FullName     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // ADMIN, OWNER, ATTENDANT (ver permission.Role)
	Status       string // ACTIVE, INACTIVE
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
