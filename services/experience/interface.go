package experience

import (
	"context"

	"andeanscapes/models"
)

// ExperienceService serves the immutable configuration of bookable
// experiences.
type ExperienceService interface {
	GetExperienceData(ctx context.Context, experienceID string) (*models.ExperienceData, error)
	ListExperienceIDs(ctx context.Context) ([]string, error)
}
