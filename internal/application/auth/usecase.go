package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/antiquehaven/antique-haven-api/internal/application/dto"
	"github.com/antiquehaven/antique-haven-api/internal/domain"
	"github.com/antiquehaven/antique-haven-api/internal/domain/entity"
	"github.com/antiquehaven/antique-haven-api/internal/domain/permission"
	"github.com/antiquehaven/antique-haven-api/internal/domain/repository"
	"github.com/antiquehaven/antique-haven-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación: login contra el store local.
// El rol viaja en el token; el middleware de permisos confía en ese claim.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password, registra last_login, genera JWT con el rol
// y devuelve token + perfil + permisos efectivos del rol.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.StatusActive {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	if err := uc.userRepo.UpdateLastLogin(user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = &now

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	grants := permission.Grants(permission.Role(user.Role))
	perms := make([]dto.GrantDTO, 0, len(grants))
	for _, g := range grants {
		perms = append(perms, dto.GrantDTO{Action: g.Action, Subject: g.Subject})
	}

	return &dto.LoginResponse{
		Token:       token,
		User:        *ToUserResponse(user),
		Permissions: perms,
	}, nil
}

// ToUserResponse proyecta un User del dominio a su DTO público.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}
