package permission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/antiquehaven/antique-haven-api/internal/domain/permission"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests Can — tabla de políticas
// ──────────────────────────────────────────────────────────────────────────────

// ADMIN tiene manage/all: cualquier (action, subject) debe permitirse.
func TestCan_AdminPuedeTodo(t *testing.T) {
	cases := []struct {
		action  string
		subject string
	}{
		{"manage", "users"},
		{"read", "inventory"},
		{"delete", "sales"},
		{"export", "reports"},
		{"read", "algo-que-no-existe"},
	}
	for _, c := range cases {
		assert.True(t, permission.Can(permission.RoleAdmin, c.action, c.subject),
			"ADMIN debe poder %s sobre %s", c.action, c.subject)
	}
}

func TestCan_TablaPorRol(t *testing.T) {
	cases := []struct {
		name    string
		role    permission.Role
		action  string
		subject string
		want    bool
	}{
		// OWNER
		{"owner gestiona inventario", permission.RoleOwner, "manage", "inventory", true},
		{"owner lee inventario (manage cubre read)", permission.RoleOwner, "read", "inventory", true},
		{"owner lee reportes", permission.RoleOwner, "read", "reports", true},
		{"owner NO gestiona reportes", permission.RoleOwner, "manage", "reports", false},
		{"owner gestiona gastos", permission.RoleOwner, "manage", "expenses", true},
		{"owner lee notificaciones", permission.RoleOwner, "read", "notifications", true},
		{"owner NO gestiona usuarios", permission.RoleOwner, "manage", "users", false},
		{"owner NO gestiona ventas", permission.RoleOwner, "manage", "sales", false},
		// ATTENDANT
		{"attendant lee inventario", permission.RoleAttendant, "read", "inventory", true},
		{"attendant NO gestiona inventario", permission.RoleAttendant, "manage", "inventory", false},
		{"attendant gestiona ventas", permission.RoleAttendant, "manage", "sales", true},
		{"attendant lee dashboard", permission.RoleAttendant, "read", "dashboard", true},
		{"attendant NO gestiona usuarios", permission.RoleAttendant, "manage", "users", false},
		{"attendant NO lee reportes", permission.RoleAttendant, "read", "reports", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, permission.Can(c.role, c.action, c.subject))
		})
	}
}

// Rol desconocido o vacío niega todo (fail closed), sin lanzar errores.
func TestCan_RolDesconocidoNiegaTodo(t *testing.T) {
	assert.False(t, permission.Can("", "read", "inventory"))
	assert.False(t, permission.Can("SUPERUSER", "read", "inventory"))
	assert.False(t, permission.Can("admin", "manage", "all"), // sensible a mayúsculas
		"el rol en minúsculas no pertenece a la enumeración")
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, permission.RoleAdmin.Valid())
	assert.True(t, permission.RoleOwner.Valid())
	assert.True(t, permission.RoleAttendant.Valid())
	assert.False(t, permission.Role("").Valid())
	assert.False(t, permission.Role("GUEST").Valid())
}

// Grants devuelve una copia: mutarla no debe afectar la tabla interna.
func TestGrants_DevuelveCopia(t *testing.T) {
	g := permission.Grants(permission.RoleAttendant)
	assert.Len(t, g, 3)

	g[0] = permission.Grant{Action: "manage", Subject: "all"}
	assert.False(t, permission.Can(permission.RoleAttendant, "manage", "users"),
		"mutar la copia no debe escalar permisos")

	assert.Nil(t, permission.Grants("GUEST"))
}
