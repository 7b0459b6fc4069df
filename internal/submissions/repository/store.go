package repository

import (
	"context"

	"github.com/GoSim-25-26J-441/project-submissions/internal/submissions/domain"
)

// Store persists project records in insertion order.
//
// Append must be safe for concurrent use: two simultaneous appends both persist.
type Store interface {
	Load(ctx context.Context) ([]domain.Project, error)
	Save(ctx context.Context, projects []domain.Project) error
	Append(ctx context.Context, project domain.Project) error
	Ping(ctx context.Context) error
}
