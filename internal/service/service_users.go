package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/users-proxy/internal/adapter"
	"github.com/MKhiriev/users-proxy/internal/logger"
	"github.com/MKhiriev/users-proxy/models"
)

type userService struct {
	upstream adapter.UsersAdapter

	logger *logger.Logger
}

func NewUserService(upstream adapter.UsersAdapter, logger *logger.Logger) UserService {
	return &userService{
		upstream: upstream,
		logger:   logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.UserListItem, error) {
	users, err := s.upstream.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching users: %w", err)
	}

	items := make([]models.UserListItem, 0, len(users))
	for _, u := range users {
		items = append(items, models.NewUserListItem(u))
	}

	return items, nil
}

func (s *userService) GetUserProfile(ctx context.Context, id int64) (models.UserProfile, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return models.UserProfile{}, err
	}

	return models.NewUserProfile(user), nil
}

func (s *userService) GetUserContact(ctx context.Context, id int64) (models.UserContact, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return models.UserContact{}, err
	}

	return models.NewUserContact(user), nil
}

func (s *userService) GetUserAddress(ctx context.Context, id int64) (models.UserAddress, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return models.UserAddress{}, err
	}

	return models.NewUserAddress(user), nil
}

func (s *userService) GetUserProfiles(ctx context.Context, ids []int64) ([]models.UserProfile, error) {
	users, err := s.upstream.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error fetching users by ids: %w", err)
	}

	profiles := make([]models.UserProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, models.NewUserProfile(u))
	}

	if dropped := len(ids) - len(profiles); dropped > 0 {
		s.logger.Debug().Int("requested", len(ids)).Int("dropped", dropped).Msg("batch lookup dropped unresolved ids")
	}

	return profiles, nil
}

func (s *userService) getUser(ctx context.Context, id int64) (models.User, error) {
	user, found, err := s.upstream.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("error fetching user %d: %w", id, err)
	}
	if !found {
		return models.User{}, fmt.Errorf("%w: id %d", ErrUserNotFound, id)
	}

	return user, nil
}
