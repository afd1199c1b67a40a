package entity

import "time"

// Tipos de notificación.
const (
	NotificationTypeSystem    = "SYSTEM"
	NotificationTypeInventory = "INVENTORY"
	NotificationTypeSales     = "SALES"
	NotificationTypeUser      = "USER"
	NotificationTypeExpense   = "EXPENSE"
)

// Prioridades de notificación.
const (
	NotificationPriorityLow    = "LOW"
	NotificationPriorityMedium = "MEDIUM"
	NotificationPriorityHigh   = "HIGH"
)

// Notification aviso interno dirigido a uno o varios roles.
// RoleAccess vacío = visible para todos los roles.
type Notification struct {
	ID         string
	Type       string
	Title      string
	Message    string
	Priority   string
	Link       string   // deep link opcional
	RoleAccess []string // allowlist de roles; vacío = todos
	CreatedBy  string
	ReadBy     []string // IDs de usuarios que ya la leyeron
	CreatedAt  time.Time
}

// VisibleFor indica si la notificación es visible para el rol dado.
func (n *Notification) VisibleFor(role string) bool {
	if len(n.RoleAccess) == 0 {
		return true
	}
	for _, r := range n.RoleAccess {
		if r == role {
			return true
		}
	}
	return false
}

// NotificationPreferences ajustes por usuario (uno a uno con User).
// Se crea de forma perezosa en la primera lectura/escritura (semántica upsert).
type NotificationPreferences struct {
	ID                       string
	UserID                   string
	EnableEmailNotifications bool
	NotificationTypes        map[string]bool // habilitación por tipo
	SummaryFrequency         string          // daily, weekly, never
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// DefaultNotificationPreferences valores iniciales al crear perezosamente.
func DefaultNotificationPreferences(userID string) *NotificationPreferences {
	return &NotificationPreferences{
		UserID:                   userID,
		EnableEmailNotifications: true,
		NotificationTypes: map[string]bool{
			NotificationTypeSystem:    true,
			NotificationTypeInventory: true,
			NotificationTypeSales:     true,
			NotificationTypeUser:      true,
			NotificationTypeExpense:   true,
		},
		SummaryFrequency: "daily",
	}
}
