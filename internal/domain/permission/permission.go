// Package permission implementa el motor de permisos por rol: una tabla de
// políticas estática e inmutable y una función pura de evaluación.
//
// Regla de evaluación: un rol puede ejecutar (action, subject) si alguna de
// sus entradas cumple (entry.action == action || entry.action == "manage") &&
// (entry.subject == subject || entry.subject == "all"). "manage" es superset
// de cualquier acción sobre su subject; "all" es superset de cualquier subject.
// Rol desconocido o vacío niega todo (fail closed). Sin efectos secundarios.
package permission

// Role rol de usuario; determina los permisos otorgados.
type Role string

// Roles válidos del sistema.
const (
	RoleAdmin     Role = "ADMIN"
	RoleOwner     Role = "OWNER"
	RoleAttendant Role = "ATTENDANT"
)

// Acciones y subjects comodín.
const (
	ActionManage = "manage" // superset de toda acción sobre su subject
	ActionRead   = "read"
	SubjectAll   = "all" // superset de todo subject
)

// Grant par (action, subject) que un rol tiene permitido.
type Grant struct {
	Action  string
	Subject string
}

// policies tabla estática rol → grants. Se construye una sola vez al cargar
// el paquete; nadie la muta después.
var policies = map[Role][]Grant{
	RoleAdmin: {
		{ActionManage, SubjectAll},
		{ActionManage, "users"},
		{ActionManage, "inventory"},
		{ActionManage, "reports"},
		{ActionManage, "settings"},
		{ActionManage, "finances"},
	},
	RoleOwner: {
		{ActionManage, "inventory"},
		{ActionRead, "reports"},
		{ActionManage, "expenses"},
		{ActionRead, "notifications"},
	},
	RoleAttendant: {
		{ActionRead, "inventory"},
		{ActionManage, "sales"},
		{ActionRead, "dashboard"},
	},
}

// Valid indica si el rol pertenece a la enumeración del sistema.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOwner, RoleAttendant:
		return true
	}
	return false
}

// Can evalúa si el rol puede ejecutar la acción sobre el subject.
// Rol ausente o desconocido devuelve false en lugar de error.
func Can(role Role, action, subject string) bool {
	grants, ok := policies[role]
	if !ok {
		return false
	}
	for _, g := range grants {
		if (g.Action == action || g.Action == ActionManage) &&
			(g.Subject == subject || g.Subject == SubjectAll) {
			return true
		}
	}
	return false
}

// Grants devuelve una copia de los grants del rol (para exponerlos al cliente,
// p. ej. en la respuesta de login). La tabla interna no se expone mutable.
func Grants(role Role) []Grant {
	grants, ok := policies[role]
	if !ok {
		return nil
	}
	out := make([]Grant, len(grants))
	copy(out, grants)
	return out
}
