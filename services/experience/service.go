package experience

import (
	"context"
	"sort"

	"andeanscapes/models"
)

// DefaultExperienceService serves catalog entries from an in-process map.
type DefaultExperienceService struct {
	catalog map[string]models.ExperienceData
}

// NewDefaultExperienceService returns the catalog with the built-in
// experiences registered.
func NewDefaultExperienceService() *DefaultExperienceService {
	return &DefaultExperienceService{
		catalog: map[string]models.ExperienceData{
			emeraldMiningData.Config.ID: emeraldMiningData,
		},
	}
}

func (s *DefaultExperienceService) GetExperienceData(_ context.Context, experienceID string) (*models.ExperienceData, error) {
	data, ok := s.catalog[experienceID]
	if !ok {
		return nil, &NotFoundError{ExperienceID: experienceID}
	}
	return &data, nil
}

func (s *DefaultExperienceService) ListExperienceIDs(_ context.Context) ([]string, error) {
	ids := make([]string, 0, len(s.catalog))
	for id := range s.catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
