package service

import (
	"errors"
	"fmt"

	"metadata-catalog/internal/database/models"
	apperrors "metadata-catalog/internal/errors"
	"metadata-catalog/internal/repository"
	"metadata-catalog/internal/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnerService resolves users and teams acting as entity owners
type OwnerService struct {
	userRepo repository.UserRepositoryInterface
	teamRepo repository.TeamRepositoryInterface
}

// Ensure OwnerService implements OwnerServiceInterface
var _ OwnerServiceInterface = (*OwnerService)(nil)

// NewOwnerService creates a new OwnerService
func NewOwnerService(userRepo repository.UserRepositoryInterface, teamRepo repository.TeamRepositoryInterface) *OwnerService {
	return &OwnerService{
		userRepo: userRepo,
		teamRepo: teamRepo,
	}
}

// GetUserByName retrieves a user by login name
func (s *OwnerService) GetUserByName(name string) (*types.User, error) {
	user, err := s.userRepo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toUserResponse(user), nil
}

// GetTeamByName retrieves a team by name
func (s *OwnerService) GetTeamByName(name string) (*types.Team, error) {
	team, err := s.teamRepo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return toTeamResponse(team), nil
}

// Resolve looks the owner up by name when one is given, otherwise by id.
// Name wins because a client merging partial owner fields keeps the previous
// owner's id alongside the new name.
func (s *OwnerService) Resolve(ref types.EntityReference) (*types.EntityReference, error) {
	switch ref.Type {
	case types.EntityTypeUser:
		var user *models.User
		var err error
		if ref.Name != "" {
			user, err = s.userRepo.GetByName(ref.Name)
		} else {
			user, err = s.userRepo.GetByID(ref.ID)
		}
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NewValidationError("owner", fmt.Sprintf("user %s not found", ownerKey(ref)))
			}
			return nil, fmt.Errorf("failed to resolve owner: %w", err)
		}
		return userReference(user), nil
	case types.EntityTypeTeam:
		var team *models.Team
		var err error
		if ref.Name != "" {
			team, err = s.teamRepo.GetByName(ref.Name)
		} else {
			team, err = s.teamRepo.GetByID(ref.ID)
		}
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NewValidationError("owner", fmt.Sprintf("team %s not found", ownerKey(ref)))
			}
			return nil, fmt.Errorf("failed to resolve owner: %w", err)
		}
		return teamReference(team), nil
	default:
		return nil, apperrors.ErrInvalidOwnerType
	}
}

// Reference builds the owner reference for a stored owner id
func (s *OwnerService) Reference(ownerType types.EntityType, id uuid.UUID) (*types.EntityReference, error) {
	switch ownerType {
	case types.EntityTypeUser:
		user, err := s.userRepo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrOwnerNotFound
			}
			return nil, fmt.Errorf("failed to get owner: %w", err)
		}
		return userReference(user), nil
	case types.EntityTypeTeam:
		team, err := s.teamRepo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrOwnerNotFound
			}
			return nil, fmt.Errorf("failed to get owner: %w", err)
		}
		return teamReference(team), nil
	default:
		return nil, apperrors.ErrInvalidOwnerType
	}
}

func ownerKey(ref types.EntityReference) string {
	if ref.Name != "" {
		return ref.Name
	}
	return ref.ID.String()
}

func userReference(u *models.User) *types.EntityReference {
	return &types.EntityReference{
		ID:                 u.ID,
		Type:               types.EntityTypeUser,
		Name:               u.Name,
		FullyQualifiedName: u.Name,
		DisplayName:        u.DisplayName,
		Deleted:            u.Deleted,
	}
}

func teamReference(t *models.Team) *types.EntityReference {
	return &types.EntityReference{
		ID:                 t.ID,
		Type:               types.EntityTypeTeam,
		Name:               t.Name,
		FullyQualifiedName: t.Name,
		DisplayName:        t.DisplayName,
		Deleted:            t.Deleted,
	}
}

func toUserResponse(u *models.User) *types.User {
	return &types.User{
		ID:          u.ID,
		Name:        u.Name,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Deleted:     u.Deleted,
	}
}

func toTeamResponse(t *models.Team) *types.Team {
	return &types.Team{
		ID:          t.ID,
		Name:        t.Name,
		DisplayName: t.DisplayName,
		Email:       t.Email,
		TeamType:    t.TeamType,
		Deleted:     t.Deleted,
	}
}
