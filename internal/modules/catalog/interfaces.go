package catalog

import (
	"context"

	"bookit/internal/domain"
)

// ExperienceRepository defines the catalog read operations
type ExperienceRepository interface {
	List(ctx context.Context) ([]domain.Experience, error)
	GetByID(ctx context.Context, id int64) (*domain.Experience, error)
}
