package projects

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/W4153WASMCoder/ApplicationService/pkg/errcodes"
	"github.com/W4153WASMCoder/ApplicationService/pkg/models"
	"github.com/W4153WASMCoder/ApplicationService/pkg/stores"
)

// Store is the slice of the remote project/file store the projects service
// depends on.
type Store interface {
	ListProjects(ctx context.Context, userID, limit, offset int) ([]*models.Project, int, error)
	RetrieveProject(ctx context.Context, id int) (*models.Project, error)
	CreateProject(ctx context.Context, project *models.Project) (*models.Project, error)
	UpdateProject(ctx context.Context, project *models.Project) (*models.Project, error)
	DeleteProject(ctx context.Context, id int) error
}

// Service handles project operations.
type Service struct {
	store Store
}

// NewService creates a new projects service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// ListOptions contains options for listing one page of a user's projects.
type ListOptions struct {
	UserID int
	Limit  int
	Offset int
}

// List returns one page of a user's projects plus the store's total count.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]*models.Project, int, error) {
	projects, total, err := s.store.ListProjects(ctx, opts.UserID, opts.Limit, opts.Offset)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, 0, errcodes.NotFound("User")
		}
		return nil, 0, errcodes.UpstreamUnavailable("project/file")
	}
	return projects, total, nil
}

// Retrieve gets a project by ID.
func (s *Service) Retrieve(ctx context.Context, id int) (*models.Project, error) {
	project, err := s.store.RetrieveProject(ctx, id)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, errcodes.NotFound("Project")
		}
		return nil, errcodes.UpstreamUnavailable("project/file")
	}
	return project, nil
}

// CreateProjectOptions contains options for creating a project.
type CreateProjectOptions struct {
	UserID int
	Name   string
}

// Create persists a new project through the store.
func (s *Service) Create(ctx context.Context, opts CreateProjectOptions) (*models.Project, error) {
	project := &models.Project{
		UserID:    opts.UserID,
		Name:      opts.Name,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.store.CreateProject(ctx, project)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, errcodes.NotFound("User")
		}
		return nil, errcodes.UpstreamUnavailable("project/file")
	}
	return created, nil
}

// Update replaces the stored record for project.ID.
func (s *Service) Update(ctx context.Context, project *models.Project) (*models.Project, error) {
	updated, err := s.store.UpdateProject(ctx, project)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, errcodes.NotFound("Project")
		}
		return nil, errcodes.UpstreamUnavailable("project/file")
	}
	return updated, nil
}

// Delete removes a project.
func (s *Service) Delete(ctx context.Context, id int) error {
	err := s.store.DeleteProject(ctx, id)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return errcodes.NotFound("Project")
		}
		return errcodes.UpstreamUnavailable("project/file")
	}
	return nil
}
