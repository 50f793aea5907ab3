package stores

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/W4153WASMCoder/ApplicationService/pkg/models"
)

// ProjectStore is the HTTP client for the remote project/file store, which
// serves both project records and the flat file records the tree builder
// consumes.
type ProjectStore struct {
	client *client
}

// NewProjectStore creates a client for the project/file store at baseURL.
func NewProjectStore(baseURL string, timeout time.Duration, retryCount int) (*ProjectStore, error) {
	c, err := newClient(baseURL, timeout, retryCount)
	if err != nil {
		return nil, err
	}
	return &ProjectStore{client: c}, nil
}

type projectListResponse struct {
	Projects []*models.Project `json:"projects"`
	Total    int               `json:"total"`
}

// ListProjects returns one page of a user's projects plus the total count.
func (s *ProjectStore) ListProjects(ctx context.Context, userID, limit, offset int) ([]*models.Project, int, error) {
	query := url.Values{}
	query.Set("UserID", strconv.Itoa(userID))
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	resp := projectListResponse{}
	if err := s.client.get(ctx, "/projects", query, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Projects, resp.Total, nil
}

// RetrieveProject fetches a single project record by id.
func (s *ProjectStore) RetrieveProject(ctx context.Context, id int) (*models.Project, error) {
	project := &models.Project{}
	if err := s.client.get(ctx, "/projects/"+strconv.Itoa(id), nil, project); err != nil {
		return nil, err
	}
	return project, nil
}

// CreateProject persists a new project record.
func (s *ProjectStore) CreateProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	created := &models.Project{}
	if err := s.client.send(ctx, http.MethodPost, "/projects", project, created); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateProject replaces the stored record for project.ID.
func (s *ProjectStore) UpdateProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	updated := &models.Project{}
	if err := s.client.send(ctx, http.MethodPut, "/projects/"+strconv.Itoa(project.ID), project, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteProject removes a project record.
func (s *ProjectStore) DeleteProject(ctx context.Context, id int) error {
	return s.client.send(ctx, http.MethodDelete, "/projects/"+strconv.Itoa(id), nil, nil)
}

type fileListResponse struct {
	Files []*models.File `json:"files"`
	Total int            `json:"total"`
}

// ListFiles returns one page of a project's flat file records, in the
// store's order, plus the total count for the project. The caller turns the
// page into a tree; this client never interprets parent references.
func (s *ProjectStore) ListFiles(ctx context.Context, projectID, limit, offset int) ([]*models.File, int, error) {
	query := url.Values{}
	query.Set("ProjectID", strconv.Itoa(projectID))
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	resp := fileListResponse{}
	if err := s.client.get(ctx, "/files", query, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Files, resp.Total, nil
}

// RetrieveFile fetches a single file record by id.
func (s *ProjectStore) RetrieveFile(ctx context.Context, id int) (*models.File, error) {
	file := &models.File{}
	if err := s.client.get(ctx, "/files/"+strconv.Itoa(id), nil, file); err != nil {
		return nil, err
	}
	return file, nil
}

// CreateFile persists a new file record.
func (s *ProjectStore) CreateFile(ctx context.Context, file *models.File) (*models.File, error) {
	created := &models.File{}
	if err := s.client.send(ctx, http.MethodPost, "/files", file, created); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateFile replaces the stored record for file.ID.
func (s *ProjectStore) UpdateFile(ctx context.Context, file *models.File) (*models.File, error) {
	updated := &models.File{}
	if err := s.client.send(ctx, http.MethodPut, "/files/"+strconv.Itoa(file.ID), file, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteFile removes a file record.
func (s *ProjectStore) DeleteFile(ctx context.Context, id int) error {
	return s.client.send(ctx, http.MethodDelete, "/files/"+strconv.Itoa(id), nil, nil)
}
