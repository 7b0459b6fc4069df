package http

import "github.com/GoSim-25-26J-441/project-submissions/internal/submissions/service"

const (
	msgSubmitted     = "Project submitted successfully!"
	msgMissingFields = "Missing required fields."
	msgServerError   = "Server error. Please try again."
	msgTooLarge      = "File too large."
)

// Handler bundles the dependencies for project submission endpoints.
type Handler struct {
	svc *service.SubmissionService
}

func New(svc *service.SubmissionService) *Handler {
	return &Handler{svc: svc}
}
