package projects

// ListProjectsQuery represents the query parameters for listing projects.
// Limit and offset stay raw strings; the pagination calculator normalizes
// them.
type ListProjectsQuery struct {
	UserID int    `query:"UserID" validate:"required,gt=0"`
	Limit  string `query:"limit"`
	Offset string `query:"offset"`
}

// CreateProjectPayload represents the request body for creating a project.
type CreateProjectPayload struct {
	UserID int    `json:"userId" validate:"required,gt=0"`
	Name   string `json:"name" validate:"required,min=1,max=255"`
}

// UpdateProjectPayload represents the request body for updating a project.
type UpdateProjectPayload struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=255"`
}
