package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antiquehaven/antique-haven-api/internal/application/dto"
	"github.com/antiquehaven/antique-haven-api/internal/domain"
	"github.com/antiquehaven/antique-haven-api/internal/domain/entity"
	"github.com/antiquehaven/antique-haven-api/internal/domain/repository"
)

// fakeNotificationRepo repositorio en memoria para los tests del caso de uso.
type fakeNotificationRepo struct {
	notifications map[string]*entity.Notification
	preferences   map[string]*entity.NotificationPreferences
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{
		notifications: make(map[string]*entity.Notification),
		preferences:   make(map[string]*entity.NotificationPreferences),
	}
}

func (f *fakeNotificationRepo) Create(n *entity.Notification) error {
	f.notifications[n.ID] = n
	return nil
}

func (f *fakeNotificationRepo) GetByID(id string) (*entity.Notification, error) {
	return f.notifications[id], nil
}

func (f *fakeNotificationRepo) List(filter repository.NotificationFilter) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range f.notifications {
		if !n.VisibleFor(filter.Role) {
			continue
		}
		if filter.Type != "" && n.Type != filter.Type {
			continue
		}
		if filter.Priority != "" && n.Priority != filter.Priority {
			continue
		}
		if filter.UnreadOnly && contains(n.ReadBy, filter.UserID) {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (f *fakeNotificationRepo) ListVisibleIDs(role string) ([]string, error) {
	var ids []string
	for _, n := range f.notifications {
		if n.VisibleFor(role) {
			ids = append(ids, n.ID)
		}
	}
	return ids, nil
}

func (f *fakeNotificationRepo) MarkRead(notificationID, userID string) error {
	n, ok := f.notifications[notificationID]
	if !ok {
		return domain.ErrNotFound
	}
	if !contains(n.ReadBy, userID) {
		n.ReadBy = append(n.ReadBy, userID)
	}
	return nil
}

func (f *fakeNotificationRepo) MarkReadBulk(notificationIDs []string, userID string) error {
	for _, id := range notificationIDs {
		if err := f.MarkRead(id, userID); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeNotificationRepo) Delete(id string) error {
	delete(f.notifications, id)
	return nil
}

func (f *fakeNotificationRepo) GetPreferences(userID string) (*entity.NotificationPreferences, error) {
	return f.preferences[userID], nil
}

func (f *fakeNotificationRepo) UpsertPreferences(prefs *entity.NotificationPreferences) error {
	f.preferences[prefs.UserID] = prefs
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func seedNotification(repo *fakeNotificationRepo, id string, roleAccess []string) {
	repo.notifications[id] = &entity.Notification{
		ID:         id,
		Type:       entity.NotificationTypeSystem,
		Title:      "aviso",
		Message:    "mensaje",
		Priority:   entity.NotificationPriorityMedium,
		RoleAccess: roleAccess,
		CreatedAt:  time.Now(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Visibilidad por rol y estado de lectura por usuario
// ──────────────────────────────────────────────────────────────────────────────

func TestNotificaciones_VisibilidadPorRol(t *testing.T) {
	repo := newFakeNotificationRepo()
	uc := NewNotificationUseCase(repo)

	seedNotification(repo, "n-todos", nil)
	seedNotification(repo, "n-admin", []string{"ADMIN"})
	seedNotification(repo, "n-owner-admin", []string{"ADMIN", "OWNER"})

	// ATTENDANT solo ve la notificación sin allowlist
	out, err := uc.List("user-1", "ATTENDANT", dto.ListNotificationsRequest{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "n-todos", out[0].ID)

	// OWNER ve la global y la suya
	out, err = uc.List("user-2", "OWNER", dto.ListNotificationsRequest{})
	require.NoError(t, err)
	assert.Len(t, out, 2)

	// ADMIN ve las tres
	out, err = uc.List("user-3", "ADMIN", dto.ListNotificationsRequest{})
	require.NoError(t, err)
	assert.Len(t, out, 3)
}

func TestNotificaciones_LecturaEsPorUsuario(t *testing.T) {
	repo := newFakeNotificationRepo()
	uc := NewNotificationUseCase(repo)
	seedNotification(repo, "n-1", nil)

	require.NoError(t, uc.MarkRead("n-1", "user-a", "ADMIN"))
	// marcar dos veces es inocuo
	require.NoError(t, uc.MarkRead("n-1", "user-a", "ADMIN"))

	outA, err := uc.List("user-a", "ADMIN", dto.ListNotificationsRequest{})
	require.NoError(t, err)
	require.Len(t, outA, 1)
	assert.True(t, outA[0].Read, "user-a ya la leyó")

	outB, err := uc.List("user-b", "ADMIN", dto.ListNotificationsRequest{})
	require.NoError(t, err)
	require.Len(t, outB, 1)
	assert.False(t, outB[0].Read, "la lectura de user-a no afecta a user-b")
}

func TestNotificaciones_MarkReadRespetaVisibilidad(t *testing.T) {
	repo := newFakeNotificationRepo()
	uc := NewNotificationUseCase(repo)
	seedNotification(repo, "n-admin", []string{"ADMIN"})

	err := uc.MarkRead("n-admin", "user-1", "ATTENDANT")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.MarkRead("no-existe", "user-1", "ADMIN")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNotificaciones_MarkAllReadSoloVisibles(t *testing.T) {
	repo := newFakeNotificationRepo()
	uc := NewNotificationUseCase(repo)
	seedNotification(repo, "n-todos", nil)
	seedNotification(repo, "n-admin", []string{"ADMIN"})

	count, err := uc.MarkAllRead("user-1", "OWNER")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "OWNER solo abarca las visibles para su rol")

	// la de ADMIN quedó sin leer
	assert.Empty(t, repo.notifications["n-admin"].ReadBy)
	assert.Equal(t, []string{"user-1"}, repo.notifications["n-todos"].ReadBy)
}

func TestNotificaciones_CreateValidaTipoYPrioridad(t *testing.T) {
	repo := newFakeNotificationRepo()
	uc := NewNotificationUseCase(repo)

	cases := []dto.CreateNotificationRequest{
		{Type: "BOGUS", Title: "t", Message: "m", Priority: "LOW"},
		{Type: "SYSTEM", Title: "t", Message: "m", Priority: "URGENT"},
		{Type: "SYSTEM", Title: "", Message: "m", Priority: "LOW"},
		{Type: "SYSTEM", Title: "t", Message: "m", Priority: "LOW", RoleAccess: []string{"SUPERUSER"}},
	}
	for _, in := range cases {
		_, err := uc.Create(in, "actor")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	out, err := uc.Create(dto.CreateNotificationRequest{
		Type: "INVENTORY", Title: "stock bajo", Message: "quedan 2 unidades",
		Priority: "HIGH", RoleAccess: []string{"ADMIN", "OWNER"},
	}, "actor")
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.False(t, out.Read)
}

// ──────────────────────────────────────────────────────────────────────────────
// Preferencias: defaults perezosos y upsert parcial
// ──────────────────────────────────────────────────────────────────────────────

func TestPreferencias_DefaultsSinPersistir(t *testing.T) {
	repo := newFakeNotificationRepo()
	uc := NewNotificationUseCase(repo)

	prefs, err := uc.GetPreferences("user-1")
	require.NoError(t, err)
	assert.True(t, prefs.EnableEmailNotifications)
	assert.Equal(t, "daily", prefs.SummaryFrequency)
	assert.True(t, prefs.NotificationTypes["SALES"])

	// la lectura no crea la fila
	assert.Empty(t, repo.preferences)
}

func TestPreferencias_UpsertParcial(t *testing.T) {
	repo := newFakeNotificationRepo()
	uc := NewNotificationUseCase(repo)

	freq := "weekly"
	out, err := uc.UpdatePreferences("user-1", dto.NotificationPreferencesRequest{
		SummaryFrequency:  &freq,
		NotificationTypes: map[string]bool{"SALES": false},
	})
	require.NoError(t, err)

	// campo no tocado conserva el default
	assert.True(t, out.EnableEmailNotifications)
	assert.Equal(t, "weekly", out.SummaryFrequency)
	assert.False(t, out.NotificationTypes["SALES"])
	assert.True(t, out.NotificationTypes["SYSTEM"], "los demás tipos no cambian")

	// segunda escritura parte de lo persistido, no de los defaults
	enabled := false
	out, err = uc.UpdatePreferences("user-1", dto.NotificationPreferencesRequest{
		EnableEmailNotifications: &enabled,
	})
	require.NoError(t, err)
	assert.False(t, out.EnableEmailNotifications)
	assert.Equal(t, "weekly", out.SummaryFrequency, "lo guardado antes se conserva")
}

func TestPreferencias_UpsertValidaEntradas(t *testing.T) {
	repo := newFakeNotificationRepo()
	uc := NewNotificationUseCase(repo)

	badFreq := "hourly"
	_, err := uc.UpdatePreferences("user-1", dto.NotificationPreferencesRequest{SummaryFrequency: &badFreq})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdatePreferences("user-1", dto.NotificationPreferencesRequest{
		NotificationTypes: map[string]bool{"BOGUS": true},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
