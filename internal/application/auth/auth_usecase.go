// Package auth implements account registration and login.
package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kumasoglu/tekstil-api/internal/application/dto"
	"github.com/kumasoglu/tekstil-api/internal/domain"
	"github.com/kumasoglu/tekstil-api/internal/domain/entity"
	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
	"github.com/kumasoglu/tekstil-api/pkg/config"
	"github.com/kumasoglu/tekstil-api/pkg/jwt"
)

func validRole(r string) bool {
	switch r {
	case entity.RoleAdmin, entity.RoleWarehouse, entity.RoleAccounting:
		return true
	}
	return false
}

// UseCase handles register and login.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   config.JWTConfig
}

// NewUseCase builds the use case.
func NewUseCase(userRepo repository.UserRepository, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register creates an account and returns a fresh token.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if in.Name == "" || in.Email == "" || len(in.Password) < 8 || !validRole(in.Role) {
		return nil, domain.ErrInvalidInput
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
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return uc.respond(user)
}

// Login verifies credentials and returns a token. Wrong email and wrong
// password return the same error so the endpoint does not leak which
// accounts exist.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.respond(user)
}

func (uc *UseCase) respond(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token: token,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}
