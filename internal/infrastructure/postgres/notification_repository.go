package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/antiquehaven/antique-haven-api/internal/domain/entity"
	"github.com/antiquehaven/antique-haven-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación de NotificationRepository sobre PostgreSQL.
// El estado de lectura vive en notification_reads (una fila por usuario y
// notificación); las preferencias por tipo se guardan como JSONB.
type NotificationRepo struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository construye el adaptador de notificaciones.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepo {
	return &NotificationRepo{pool: pool}
}

// Create persiste una notificación.
func (r *NotificationRepo) Create(n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, type, title, message, priority, link, role_access, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		n.ID, n.Type, n.Title, n.Message, n.Priority, n.Link,
		n.RoleAccess, n.CreatedBy, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// GetByID obtiene una notificación con su lista de lectores. Devuelve nil
// si no existe.
func (r *NotificationRepo) GetByID(id string) (*entity.Notification, error) {
	query := `
		SELECT n.id, n.type, n.title, n.message, n.priority, n.link, n.role_access, n.created_by, n.created_at,
		       ARRAY(SELECT user_id FROM notification_reads WHERE notification_id = n.id)
		FROM notifications n WHERE n.id = $1`
	var n entity.Notification
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&n.ID, &n.Type, &n.Title, &n.Message, &n.Priority, &n.Link,
		&n.RoleAccess, &n.CreatedBy, &n.CreatedAt, &n.ReadBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification by id: %w", err)
	}
	return &n, nil
}

// List notificaciones visibles para el rol del filtro, las más recientes
// primero. role_access vacío = visible para todos.
func (r *NotificationRepo) List(filter repository.NotificationFilter) ([]*entity.Notification, error) {
	query := `
		SELECT n.id, n.type, n.title, n.message, n.priority, n.link, n.role_access, n.created_by, n.created_at,
		       ARRAY(SELECT user_id FROM notification_reads WHERE notification_id = n.id)
		FROM notifications n
		WHERE (cardinality(n.role_access) = 0 OR $1 = ANY(n.role_access))`
	args := []any{filter.Role}

	if filter.Type != "" {
		args = append(args, filter.Type)
		query += " AND n.type = $" + strconv.Itoa(len(args))
	}
	if filter.Priority != "" {
		args = append(args, filter.Priority)
		query += " AND n.priority = $" + strconv.Itoa(len(args))
	}
	if filter.UnreadOnly {
		args = append(args, filter.UserID)
		query += ` AND NOT EXISTS (
			SELECT 1 FROM notification_reads
			WHERE notification_id = n.id AND user_id = $` + strconv.Itoa(len(args)) + `)`
	}
	query += " ORDER BY n.created_at DESC"

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(
			&n.ID, &n.Type, &n.Title, &n.Message, &n.Priority, &n.Link,
			&n.RoleAccess, &n.CreatedBy, &n.CreatedAt, &n.ReadBy,
		); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// ListVisibleIDs IDs de todas las notificaciones visibles para el rol.
func (r *NotificationRepo) ListVisibleIDs(role string) ([]string, error) {
	query := `
		SELECT id FROM notifications
		WHERE cardinality(role_access) = 0 OR $1 = ANY(role_access)`
	rows, err := r.pool.Query(context.Background(), query, role)
	if err != nil {
		return nil, fmt.Errorf("list visible notification ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan notification id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// MarkRead registra la lectura de un usuario. Idempotente (ON CONFLICT).
func (r *NotificationRepo) MarkRead(notificationID, userID string) error {
	query := `
		INSERT INTO notification_reads (notification_id, user_id, read_at)
		VALUES ($1, $2, now())
		ON CONFLICT (notification_id, user_id) DO NOTHING`
	_, err := r.pool.Exec(context.Background(), query, notificationID, userID)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

// MarkReadBulk registra la lectura de varias notificaciones de una vez.
func (r *NotificationRepo) MarkReadBulk(notificationIDs []string, userID string) error {
	query := `
		INSERT INTO notification_reads (notification_id, user_id, read_at)
		SELECT unnest($1::text[]), $2, now()
		ON CONFLICT (notification_id, user_id) DO NOTHING`
	_, err := r.pool.Exec(context.Background(), query, notificationIDs, userID)
	if err != nil {
		return fmt.Errorf("mark notifications read bulk: %w", err)
	}
	return nil
}

// Delete elimina la notificación y sus lecturas (FK con ON DELETE CASCADE).
func (r *NotificationRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}

// GetPreferences obtiene las preferencias del usuario. Devuelve nil si
// nunca las guardó.
func (r *NotificationRepo) GetPreferences(userID string) (*entity.NotificationPreferences, error) {
	query := `
		SELECT id, user_id, enable_email_notifications, notification_types, summary_frequency, created_at, updated_at
		FROM notification_preferences WHERE user_id = $1`
	var p entity.NotificationPreferences
	var typesRaw []byte
	err := r.pool.QueryRow(context.Background(), query, userID).Scan(
		&p.ID, &p.UserID, &p.EnableEmailNotifications, &typesRaw,
		&p.SummaryFrequency, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification preferences: %w", err)
	}
	if err := json.Unmarshal(typesRaw, &p.NotificationTypes); err != nil {
		return nil, fmt.Errorf("decode notification types: %w", err)
	}
	return &p, nil
}

// UpsertPreferences crea o actualiza las preferencias (una fila por usuario).
func (r *NotificationRepo) UpsertPreferences(prefs *entity.NotificationPreferences) error {
	typesRaw, err := json.Marshal(prefs.NotificationTypes)
	if err != nil {
		return fmt.Errorf("encode notification types: %w", err)
	}
	query := `
		INSERT INTO notification_preferences (id, user_id, enable_email_notifications, notification_types, summary_frequency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id)
		DO UPDATE SET enable_email_notifications = EXCLUDED.enable_email_notifications,
		              notification_types = EXCLUDED.notification_types,
		              summary_frequency = EXCLUDED.summary_frequency,
		              updated_at = EXCLUDED.updated_at`
	_, err = r.pool.Exec(context.Background(), query,
		prefs.ID, prefs.UserID, prefs.EnableEmailNotifications, typesRaw,
		prefs.SummaryFrequency, prefs.CreatedAt, prefs.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert notification preferences: %w", err)
	}
	return nil
}
