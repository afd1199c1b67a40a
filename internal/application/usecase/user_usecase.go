package usecase

import (
	"context"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/antiquehaven/antique-haven-api/internal/application/auth"
	"github.com/antiquehaven/antique-haven-api/internal/application/dto"
	"github.com/antiquehaven/antique-haven-api/internal/domain"
	"github.com/antiquehaven/antique-haven-api/internal/domain/entity"
	"github.com/antiquehaven/antique-haven-api/internal/domain/permission"
	"github.com/antiquehaven/antique-haven-api/internal/domain/repository"
)

const (
	minUsernameLen = 3
	minFullNameLen = 2
	minPasswordLen = 8
)

// UserUseCase gestión de usuarios (solo ADMIN a través del router).
// El rol solo cambia por update administrativo explícito.
type UserUseCase struct {
	userRepo   repository.UserRepository
	reportRepo repository.ReportRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, reportRepo repository.ReportRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, reportRepo: reportRepo}
}

// Create da de alta un usuario con password hasheado (bcrypt).
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := validateNewUser(in); err != nil {
		return nil, err
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// List devuelve todos los usuarios (proyección sin hash).
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}

// GetByID devuelve un usuario o nil si no existe.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Update modifica perfil y/o rol. Campos nil quedan como están.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if in.Username != nil {
		if len(*in.Username) < minUsernameLen {
			return nil, domain.ErrInvalidInput
		}
		user.Username = *in.Username
	}
	if in.FullName != nil {
		if len(*in.FullName) < minFullNameLen {
			return nil, domain.ErrInvalidInput
		}
		user.FullName = *in.FullName
	}
	if in.Email != nil {
		if _, err := mail.ParseAddress(*in.Email); err != nil {
			return nil, domain.ErrInvalidInput
		}
		user.Email = *in.Email
	}
	if in.Role != nil {
		if !permission.Role(*in.Role).Valid() {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Password != nil {
		if len(*in.Password) < minPasswordLen {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Deactivate marca el usuario como INACTIVE; no podrá volver a loguearse.
func (uc *UserUseCase) Deactivate(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if err := uc.userRepo.UpdateStatus(id, entity.StatusInactive); err != nil {
		return nil, err
	}
	user.Status = entity.StatusInactive
	return auth.ToUserResponse(user), nil
}

// Stats actividad acumulada del usuario: ventas atendidas y gastos registrados.
func (uc *UserUseCase) Stats(ctx context.Context, id string) (*dto.UserStatsResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	stats, err := uc.reportRepo.GetUserStats(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.UserStatsResponse{
		TotalSales:    stats.SaleCount,
		TotalProfit:   stats.TotalProfit.String(),
		ItemsSold:     stats.ItemsSold,
		TotalExpenses: stats.TotalExpenses.String(),
		ExpenseCount:  stats.ExpenseCount,
	}, nil
}

func validateNewUser(in dto.CreateUserRequest) error {
	if len(in.Username) < minUsernameLen || len(in.FullName) < minFullNameLen {
		return domain.ErrInvalidInput
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return domain.ErrInvalidInput
	}
	if !permission.Role(in.Role).Valid() {
		return domain.ErrInvalidInput
	}
	if len(in.Password) < minPasswordLen {
		return domain.ErrInvalidInput
	}
	return nil
}
