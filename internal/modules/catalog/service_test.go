package catalog

import (
	"context"
	"testing"

	"bookit/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockExperienceRepository struct {
	mock.Mock
}

func (m *MockExperienceRepository) List(ctx context.Context) ([]domain.Experience, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Experience), args.Error(1)
}

func (m *MockExperienceRepository) GetByID(ctx context.Context, id int64) (*domain.Experience, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Experience), args.Error(1)
}

func TestService_ListExperiences_ProjectsSummaries(t *testing.T) {
	repo := new(MockExperienceRepository)
	original := 1299.0
	repo.On("List", mock.Anything).Return([]domain.Experience{
		{
			ID:            2,
			Title:         "Scuba Diving",
			Location:      "Goa",
			Price:         999,
			OriginalPrice: &original,
			Image:         "img",
			Description:   "desc",
		},
		{ID: 1, Title: "Kayaking Adventure", Location: "Udupi", Price: 999},
	}, nil)

	service := NewService(repo)

	out, err := service.ListExperiences(context.Background())

	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "Scuba Diving", out[0].Title)
	assert.Equal(t, &original, out[0].OriginalPrice)
	assert.Nil(t, out[1].OriginalPrice)
}

func TestService_GetExperience_NotFound(t *testing.T) {
	repo := new(MockExperienceRepository)
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(repo)

	_, err := service.GetExperience(context.Background(), 99)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
