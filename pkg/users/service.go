package users

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/W4153WASMCoder/ApplicationService/pkg/errcodes"
	"github.com/W4153WASMCoder/ApplicationService/pkg/models"
	"github.com/W4153WASMCoder/ApplicationService/pkg/stores"
)

// Store is the slice of the remote user store the users service depends on.
type Store interface {
	ListUsers(ctx context.Context, limit, offset int) ([]*models.User, int, error)
	RetrieveUser(ctx context.Context, id int) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) (*models.User, error)
	DeleteUser(ctx context.Context, id int) error
}

// Service handles user operations.
type Service struct {
	store Store
}

// NewService creates a new users service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// ListOptions contains options for listing one page of users.
type ListOptions struct {
	Limit  int
	Offset int
}

// List returns one page of users plus the store's total count.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]*models.User, int, error) {
	users, total, err := s.store.ListUsers(ctx, opts.Limit, opts.Offset)
	if err != nil {
		return nil, 0, errcodes.UpstreamUnavailable("user")
	}
	return users, total, nil
}

// Retrieve gets a user by ID.
func (s *Service) Retrieve(ctx context.Context, id int) (*models.User, error) {
	user, err := s.store.RetrieveUser(ctx, id)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, errcodes.NotFound("User")
		}
		return nil, errcodes.UpstreamUnavailable("user")
	}
	return user, nil
}

// CreateUserOptions contains options for creating a user.
type CreateUserOptions struct {
	UserName string
	Email    *string
}

// Create persists a new user through the store. New users start active.
func (s *Service) Create(ctx context.Context, opts CreateUserOptions) (*models.User, error) {
	user := &models.User{
		UserName:  opts.UserName,
		Email:     opts.Email,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.store.CreateUser(ctx, user)
	if err != nil {
		return nil, errcodes.UpstreamUnavailable("user")
	}
	return created, nil
}

// Update replaces the stored record for user.ID.
func (s *Service) Update(ctx context.Context, user *models.User) (*models.User, error) {
	updated, err := s.store.UpdateUser(ctx, user)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, errcodes.NotFound("User")
		}
		return nil, errcodes.UpstreamUnavailable("user")
	}
	return updated, nil
}

// Delete removes a user.
func (s *Service) Delete(ctx context.Context, id int) error {
	err := s.store.DeleteUser(ctx, id)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return errcodes.NotFound("User")
		}
		return errcodes.UpstreamUnavailable("user")
	}
	return nil
}
