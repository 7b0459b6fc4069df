package domain

import (
	"mime/multipart"
	"strings"
	"time"
)

// Project is a single submission's metadata and a reference to its stored upload.
// Records carry no identifier; order in the store is insertion order.
type Project struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	File        string    `json:"file"`
	FileURL     string    `json:"fileUrl"`
	VideoLink   string    `json:"videoLink,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SubmitRequest is the multipart form accepted by POST /api/projects.
type SubmitRequest struct {
	Title       string                `form:"title" binding:"required"`
	Description string                `form:"description" binding:"required"`
	File        *multipart.FileHeader `form:"file" binding:"required"`
	VideoLink   string                `form:"videoLink"`
}

// Normalize trims text fields in place. An empty videoLink means "absent".
func (r *SubmitRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.VideoLink = strings.TrimSpace(r.VideoLink)
}

// Validate reports ErrValidation when a required field is missing.
func (r *SubmitRequest) Validate() error {
	switch {
	case r.Title == "":
		return &ValidationError{Field: "title"}
	case r.Description == "":
		return &ValidationError{Field: "description"}
	case r.File == nil:
		return &ValidationError{Field: "file"}
	}
	return nil
}

// StoredFile describes an upload after it has been placed on disk.
type StoredFile struct {
	Path     string
	Filename string
	URL      string
	Size     int64
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
