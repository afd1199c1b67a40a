package repository

import "github.com/antiquehaven/antique-haven-api/internal/domain/entity"

// NotificationFilter filtros para el listado de notificaciones de un usuario.
// Role determina la visibilidad (allowlist vacía = visible para todos).
type NotificationFilter struct {
	UserID     string
	Role       string
	Type       string // vacío = todos los tipos
	Priority   string // vacío = todas las prioridades
	UnreadOnly bool
}

// NotificationRepository puerto de persistencia para notificaciones y
// preferencias por usuario.
type NotificationRepository interface {
	Create(n *entity.Notification) error
	GetByID(id string) (*entity.Notification, error)
	List(filter NotificationFilter) ([]*entity.Notification, error)
	// ListVisibleIDs devuelve los IDs de todas las notificaciones visibles
	// para el rol (leídas o no); lo usa markAllAsRead.
	ListVisibleIDs(role string) ([]string, error)
	MarkRead(notificationID, userID string) error
	MarkReadBulk(notificationIDs []string, userID string) error
	Delete(id string) error

	GetPreferences(userID string) (*entity.NotificationPreferences, error)
	UpsertPreferences(prefs *entity.NotificationPreferences) error
}
