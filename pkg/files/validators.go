package files

// ListFilesQuery represents the query parameters for listing files. Limit
// and offset stay raw strings here: they are untrusted and normalized by
// the pagination calculator instead of being rejected at binding time.
type ListFilesQuery struct {
	ProjectID int    `query:"ProjectID" validate:"required,gt=0"`
	Limit     string `query:"limit"`
	Offset    string `query:"offset"`
}

// CreateFilePayload represents the request body for creating a file record.
type CreateFilePayload struct {
	ProjectID   int    `json:"projectId" validate:"required,gt=0"`
	ParentID    *int   `json:"parentId"`
	Name        string `json:"name" validate:"required,min=1,max=255"`
	IsDirectory bool   `json:"isDirectory"`
}

// UpdateFilePayload represents the request body for updating a file record.
type UpdateFilePayload struct {
	ParentID *int    `json:"parentId"`
	Name     *string `json:"name" validate:"omitempty,min=1,max=255"`
}
