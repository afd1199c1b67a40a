package repository

import (
	"time"

	"github.com/antiquehaven/antique-haven-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(user *entity.User) error
	UpdateStatus(id, status string) error
	UpdateLastLogin(id string, at time.Time) error
}
