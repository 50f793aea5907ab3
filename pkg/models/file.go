package models

import "time"

// File is one file or directory record as the project/file store returns it.
// Field names follow the store's wire format, which is why the JSON tags are
// camelCase rather than snake_case.
type File struct {
	ID          int       `json:"id"`
	ProjectID   int       `json:"projectId"`
	ParentID    *int      `json:"parentId"`
	Name        string    `json:"name"`
	IsDirectory bool      `json:"isDirectory"`
	CreatedAt   time.Time `json:"createdAt"`
}

// IsRoot reports whether the record claims no parent at all. A record whose
// parent lives on a different page still has ParentID set; resolving that is
// the tree builder's concern, not the model's.
func (f *File) IsRoot() bool {
	return f.ParentID == nil
}
