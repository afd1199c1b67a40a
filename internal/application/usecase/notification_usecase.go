package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/antiquehaven/antique-haven-api/internal/application/dto"
	"github.com/antiquehaven/antique-haven-api/internal/domain"
	"github.com/antiquehaven/antique-haven-api/internal/domain/entity"
	"github.com/antiquehaven/antique-haven-api/internal/domain/permission"
	"github.com/antiquehaven/antique-haven-api/internal/domain/repository"
)

var validNotificationTypes = map[string]bool{
	entity.NotificationTypeSystem:    true,
	entity.NotificationTypeInventory: true,
	entity.NotificationTypeSales:     true,
	entity.NotificationTypeUser:      true,
	entity.NotificationTypeExpense:   true,
}

var validNotificationPriorities = map[string]bool{
	entity.NotificationPriorityLow:    true,
	entity.NotificationPriorityMedium: true,
	entity.NotificationPriorityHigh:   true,
}

var validSummaryFrequencies = map[string]bool{
	"daily":  true,
	"weekly": true,
	"never":  true,
}

// NotificationUseCase notificaciones dirigidas por rol y preferencias por
// usuario. El estado de lectura es por usuario, no global.
type NotificationUseCase struct {
	notifRepo repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(notifRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifRepo: notifRepo}
}

// Create publica una notificación. RoleAccess vacío = todos los roles.
func (uc *NotificationUseCase) Create(in dto.CreateNotificationRequest, actorID string) (*dto.NotificationResponse, error) {
	if in.Title == "" || in.Message == "" {
		return nil, domain.ErrInvalidInput
	}
	if !validNotificationTypes[in.Type] || !validNotificationPriorities[in.Priority] {
		return nil, domain.ErrInvalidInput
	}
	for _, r := range in.RoleAccess {
		if !permission.Role(r).Valid() {
			return nil, domain.ErrInvalidInput
		}
	}

	n := &entity.Notification{
		ID:         uuid.New().String(),
		Type:       in.Type,
		Title:      in.Title,
		Message:    in.Message,
		Priority:   in.Priority,
		Link:       in.Link,
		RoleAccess: in.RoleAccess,
		CreatedBy:  actorID,
		CreatedAt:  time.Now(),
	}
	if err := uc.notifRepo.Create(n); err != nil {
		return nil, err
	}
	return toNotificationResponse(n, actorID), nil
}

// List notificaciones visibles para el rol del usuario, con su estado de
// lectura individual.
func (uc *NotificationUseCase) List(userID, role string, in dto.ListNotificationsRequest) ([]dto.NotificationResponse, error) {
	filter := repository.NotificationFilter{
		UserID:     userID,
		Role:       role,
		Type:       in.Type,
		Priority:   in.Priority,
		UnreadOnly: in.UnreadOnly,
	}
	notifications, err := uc.notifRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, *toNotificationResponse(n, userID))
	}
	return out, nil
}

// MarkRead marca una notificación como leída para el usuario. Idempotente.
func (uc *NotificationUseCase) MarkRead(notificationID, userID, role string) error {
	n, err := uc.notifRepo.GetByID(notificationID)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	if !n.VisibleFor(role) {
		return domain.ErrForbidden
	}
	return uc.notifRepo.MarkRead(notificationID, userID)
}

// MarkAllRead marca como leídas todas las notificaciones visibles para el
// rol del usuario. Devuelve cuántas abarcó.
func (uc *NotificationUseCase) MarkAllRead(userID, role string) (int, error) {
	ids, err := uc.notifRepo.ListVisibleIDs(role)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	if err := uc.notifRepo.MarkReadBulk(ids, userID); err != nil {
		return 0, err
	}
	return len(ids), nil
}

// Delete elimina una notificación para todos los usuarios.
func (uc *NotificationUseCase) Delete(id string) error {
	n, err := uc.notifRepo.GetByID(id)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	return uc.notifRepo.Delete(id)
}

// GetPreferences devuelve las preferencias del usuario; si nunca las guardó,
// devuelve los defaults sin persistirlos.
func (uc *NotificationUseCase) GetPreferences(userID string) (*dto.NotificationPreferencesResponse, error) {
	prefs, err := uc.notifRepo.GetPreferences(userID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		prefs = entity.DefaultNotificationPreferences(userID)
	}
	return toPreferencesResponse(prefs), nil
}

// UpdatePreferences upsert parcial: parte de las preferencias vigentes (o
// los defaults) y aplica solo los campos presentes.
func (uc *NotificationUseCase) UpdatePreferences(userID string, in dto.NotificationPreferencesRequest) (*dto.NotificationPreferencesResponse, error) {
	prefs, err := uc.notifRepo.GetPreferences(userID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		prefs = entity.DefaultNotificationPreferences(userID)
		prefs.ID = uuid.New().String()
		prefs.CreatedAt = time.Now()
	}

	if in.EnableEmailNotifications != nil {
		prefs.EnableEmailNotifications = *in.EnableEmailNotifications
	}
	for t, enabled := range in.NotificationTypes {
		if !validNotificationTypes[t] {
			return nil, domain.ErrInvalidInput
		}
		prefs.NotificationTypes[t] = enabled
	}
	if in.SummaryFrequency != nil {
		if !validSummaryFrequencies[*in.SummaryFrequency] {
			return nil, domain.ErrInvalidInput
		}
		prefs.SummaryFrequency = *in.SummaryFrequency
	}
	prefs.UpdatedAt = time.Now()

	if err := uc.notifRepo.UpsertPreferences(prefs); err != nil {
		return nil, err
	}
	return toPreferencesResponse(prefs), nil
}

func toNotificationResponse(n *entity.Notification, userID string) *dto.NotificationResponse {
	read := false
	for _, id := range n.ReadBy {
		if id == userID {
			read = true
			break
		}
	}
	return &dto.NotificationResponse{
		ID:         n.ID,
		Type:       n.Type,
		Title:      n.Title,
		Message:    n.Message,
		Priority:   n.Priority,
		Link:       n.Link,
		RoleAccess: n.RoleAccess,
		CreatedBy:  n.CreatedBy,
		Read:       read,
		CreatedAt:  n.CreatedAt,
	}
}

func toPreferencesResponse(p *entity.NotificationPreferences) *dto.NotificationPreferencesResponse {
	return &dto.NotificationPreferencesResponse{
		UserID:                   p.UserID,
		EnableEmailNotifications: p.EnableEmailNotifications,
		NotificationTypes:        p.NotificationTypes,
		SummaryFrequency:         p.SummaryFrequency,
		UpdatedAt:                p.UpdatedAt,
	}
}
