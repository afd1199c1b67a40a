package dto

import "time"

// CreateUserRequest alta de usuario (solo ADMIN).
type CreateUserRequest struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// UpdateUserRequest modificación de perfil/rol. Campos nil = sin cambio.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
}

// UserResponse proyección pública de un usuario (sin hash de password).
type UserResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	FullName  string     `json:"fullName"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// UserStatsResponse actividad acumulada de un usuario.
type UserStatsResponse struct {
	TotalSales    int64  `json:"totalSales"`
	TotalProfit   string `json:"totalProfit"`
	ItemsSold     int64  `json:"itemsSold"`
	TotalExpenses string `json:"totalExpenses"`
	ExpenseCount  int64  `json:"expenseCount"`
}
