package insights

import (
	"context"

	"github.com/piresc/ecotrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/ecotrack/services/insights FixtureRepo

// FixtureRepo reads the static datasets the assistant answers from
type FixtureRepo interface {
	LoadFixtures(ctx context.Context) (*models.AssistantFixtures, error)
}
