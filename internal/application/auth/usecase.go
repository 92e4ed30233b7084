package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mtechuganda/backoffice-api/internal/application/dto"
	"github.com/mtechuganda/backoffice-api/internal/domain"
	"github.com/mtechuganda/backoffice-api/internal/domain/entity"
	"github.com/mtechuganda/backoffice-api/internal/domain/repository"
	"github.com/mtechuganda/backoffice-api/pkg/jwt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase authentication: login and self-service password change.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase builds the auth use case.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifies username/password, then issues a JWT carrying the role and a
// fresh CSRF value. Inactive accounts are rejected after the hash check so a
// wrong password never reveals account status.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}
	csrf := uuid.New().String()
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, csrf, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		CSRFToken: csrf,
		User:      *ToUserResponse(user),
	}, nil
}

// ChangePassword verifies the current password, stores the new hash, and
// appends the old behavior's audit row to user_password_history.
func (uc *UseCase) ChangePassword(userID string, in dto.ChangePasswordRequest) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := uc.userRepo.UpdatePassword(userID, string(hash)); err != nil {
		return err
	}
	return uc.userRepo.AppendPasswordHistory(&entity.PasswordHistory{
		ID:           uuid.New().String(),
		UserID:       userID,
		PasswordHash: string(hash),
		ChangedBy:    userID,
		CreatedAt:    time.Now(),
	})
}

// ToUserResponse maps a user entity to its response DTO.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		AvatarPath: u.AvatarPath,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
