package catalog

import (
	"context"

	"bookit/internal/domain"
)

type Service struct {
	experiences ExperienceRepository
}

func NewService(experiences ExperienceRepository) *Service {
	return &Service{experiences: experiences}
}

func (s *Service) ListExperiences(ctx context.Context) ([]ExperienceSummary, error) {
	rows, err := s.experiences.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ExperienceSummary, 0, len(rows))
	for _, e := range rows {
		out = append(out, ExperienceSummary{
			ID:            e.ID,
			Title:         e.Title,
			Location:      e.Location,
			Price:         e.Price,
			OriginalPrice: e.OriginalPrice,
			Image:         e.Image,
			Description:   e.Description,
		})
	}
	return out, nil
}

func (s *Service) GetExperience(ctx context.Context, id int64) (*domain.Experience, error) {
	return s.experiences.GetByID(ctx, id)
}
