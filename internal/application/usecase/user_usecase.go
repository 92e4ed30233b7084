package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mtechuganda/backoffice-api/internal/application/auth"
	"github.com/mtechuganda/backoffice-api/internal/application/dto"
	"github.com/mtechuganda/backoffice-api/internal/domain"
	"github.com/mtechuganda/backoffice-api/internal/domain/entity"
	"github.com/mtechuganda/backoffice-api/internal/domain/repository"
)

// UserUseCase admin-side user management. Every password set, including the
// one at creation, appends to the password history audit trail.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase builds the use case.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create persists a new user. actorID is the admin performing the action.
func (uc *UserUseCase) Create(actorID string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	u := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Name:         in.Name,
		Email:        in.Email,
		Role:         in.Role,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(u); err != nil {
		return nil, err
	}
	if err := uc.repo.AppendPasswordHistory(&entity.PasswordHistory{
		ID:           uuid.New().String(),
		UserID:       u.ID,
		PasswordHash: u.PasswordHash,
		ChangedBy:    actorID,
		CreatedAt:    now,
	}); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(u), nil
}

func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil || u == nil {
		return nil, err
	}
	return auth.ToUserResponse(u), nil
}

func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		u.Role = *in.Role
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(u), nil
}

// ResetPassword sets a new password on behalf of an admin and records who
// changed it.
func (uc *UserUseCase) ResetPassword(actorID, userID string, in dto.ResetPasswordRequest) error {
	u, err := uc.repo.GetByID(userID)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := uc.repo.UpdatePassword(userID, string(hash)); err != nil {
		return err
	}
	return uc.repo.AppendPasswordHistory(&entity.PasswordHistory{
		ID:           uuid.New().String(),
		UserID:       userID,
		PasswordHash: string(hash),
		ChangedBy:    actorID,
		CreatedAt:    time.Now(),
	})
}

// SetAvatarPath stores the avatar path and returns the previous one.
func (uc *UserUseCase) SetAvatarPath(id, path string) (previous string, err error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", domain.ErrUserNotFound
	}
	previous = u.AvatarPath
	u.AvatarPath = path
	u.UpdatedAt = time.Now()
	return previous, uc.repo.Update(u)
}

func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}
