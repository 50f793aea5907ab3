package files

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/W4153WASMCoder/ApplicationService/pkg/errcodes"
	"github.com/W4153WASMCoder/ApplicationService/pkg/models"
	"github.com/W4153WASMCoder/ApplicationService/pkg/stores"
)

// Store is the slice of the remote project/file store the files service
// depends on.
type Store interface {
	ListFiles(ctx context.Context, projectID, limit, offset int) ([]*models.File, int, error)
	RetrieveFile(ctx context.Context, id int) (*models.File, error)
	CreateFile(ctx context.Context, file *models.File) (*models.File, error)
	UpdateFile(ctx context.Context, file *models.File) (*models.File, error)
	DeleteFile(ctx context.Context, id int) error
}

// Service handles file operations.
type Service struct {
	store Store
}

// NewService creates a new files service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// ListOptions contains options for listing one page of a project's files.
type ListOptions struct {
	ProjectID int
	Limit     int
	Offset    int
}

// List returns one page of a project's flat file records, in store order,
// plus the store's total count for the project.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]*models.File, int, error) {
	records, total, err := s.store.ListFiles(ctx, opts.ProjectID, opts.Limit, opts.Offset)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, 0, errcodes.NotFound("Project")
		}
		return nil, 0, errcodes.UpstreamUnavailable("project/file")
	}
	return records, total, nil
}

// Retrieve gets a file record by ID.
func (s *Service) Retrieve(ctx context.Context, id int) (*models.File, error) {
	file, err := s.store.RetrieveFile(ctx, id)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, errcodes.NotFound("File")
		}
		return nil, errcodes.UpstreamUnavailable("project/file")
	}
	return file, nil
}

// CreateFileOptions contains options for creating a file record.
type CreateFileOptions struct {
	ProjectID   int
	ParentID    *int
	Name        string
	IsDirectory bool
}

// Create persists a new file record through the store, which assigns the id
// and timestamp.
func (s *Service) Create(ctx context.Context, opts CreateFileOptions) (*models.File, error) {
	file := &models.File{
		ProjectID:   opts.ProjectID,
		ParentID:    opts.ParentID,
		Name:        opts.Name,
		IsDirectory: opts.IsDirectory,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.store.CreateFile(ctx, file)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, errcodes.NotFound("Project")
		}
		return nil, errcodes.UpstreamUnavailable("project/file")
	}
	return created, nil
}

// Update replaces the stored record for file.ID.
func (s *Service) Update(ctx context.Context, file *models.File) (*models.File, error) {
	updated, err := s.store.UpdateFile(ctx, file)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, errcodes.NotFound("File")
		}
		return nil, errcodes.UpstreamUnavailable("project/file")
	}
	return updated, nil
}

// Delete removes a file record.
func (s *Service) Delete(ctx context.Context, id int) error {
	err := s.store.DeleteFile(ctx, id)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return errcodes.NotFound("File")
		}
		return errcodes.UpstreamUnavailable("project/file")
	}
	return nil
}
