package dto

import "time"

// CreateNotificationRequest alta de una notificación.
// RoleAccess vacío = visible para todos los roles.
type CreateNotificationRequest struct {
	Type       string   `json:"type"`
	Title      string   `json:"title"`
	Message    string   `json:"message"`
	Priority   string   `json:"priority"`
	Link       string   `json:"link"`
	RoleAccess []string `json:"roleAccess"`
}

// NotificationResponse proyección de una notificación para un usuario dado.
type NotificationResponse struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Priority   string    `json:"priority"`
	Link       string    `json:"link,omitempty"`
	RoleAccess []string  `json:"roleAccess,omitempty"`
	CreatedBy  string    `json:"createdBy,omitempty"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ListNotificationsRequest filtros de listado (query params).
type ListNotificationsRequest struct {
	Type       string `query:"type"`
	Priority   string `query:"priority"`
	UnreadOnly bool   `query:"unreadOnly"`
}

// NotificationPreferencesRequest actualización de preferencias (upsert).
type NotificationPreferencesRequest struct {
	EnableEmailNotifications *bool           `json:"enableEmailNotifications"`
	NotificationTypes        map[string]bool `json:"notificationTypes"`
	SummaryFrequency         *string         `json:"summaryFrequency"`
}

// NotificationPreferencesResponse preferencias vigentes del usuario.
type NotificationPreferencesResponse struct {
	UserID                   string          `json:"userId"`
	EnableEmailNotifications bool            `json:"enableEmailNotifications"`
	NotificationTypes        map[string]bool `json:"notificationTypes"`
	SummaryFrequency         string          `json:"summaryFrequency"`
	UpdatedAt                time.Time       `json:"updatedAt"`
}
