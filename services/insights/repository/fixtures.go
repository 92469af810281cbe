package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/piresc/ecotrack/internal/pkg/logger"
	"github.com/piresc/ecotrack/internal/pkg/models"
)

const (
	transactionsFixture = "transactions.json"
	brandsFixture       = "brand.json"
	storesFixture       = "store.json"
)

var emptyList = json.RawMessage("[]")

// FixtureRepo reads assistant datasets from a directory of JSON files
type FixtureRepo struct {
	dir string
}

// NewFixtureRepo creates a fixture repository rooted at cfg.Fixtures.Dir
func NewFixtureRepo(cfg *models.Config) *FixtureRepo {
	return &FixtureRepo{dir: cfg.Fixtures.Dir}
}

// LoadFixtures reads every dataset. A missing file is an empty list, a file
// holding invalid JSON is an error.
func (r *FixtureRepo) LoadFixtures(ctx context.Context) (*models.AssistantFixtures, error) {
	txns, err := r.load(ctx, transactionsFixture)
	if err != nil {
		return nil, err
	}
	brands, err := r.load(ctx, brandsFixture)
	if err != nil {
		return nil, err
	}
	stores, err := r.load(ctx, storesFixture)
	if err != nil {
		return nil, err
	}

	return &models.AssistantFixtures{
		Transactions: txns,
		Brands:       brands,
		Stores:       stores,
	}, nil
}

func (r *FixtureRepo) load(ctx context.Context, name string) (json.RawMessage, error) {
	path := filepath.Join(r.dir, name)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.WarnCtx(ctx, "Fixture not found, using empty list", logger.String("path", path))
		return emptyList, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", name, err)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("fixture %s is not valid JSON", name)
	}

	return json.RawMessage(data), nil
}
