package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/piresc/ecotrack/internal/pkg/models"
	"github.com/piresc/ecotrack/services/insights/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoadFixtures(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "transactions.json", `[{"merchant":"Whole Foods","total":42.1}]`)
	writeFixture(t, dir, "brand.json", `[{"name":"Oatly","sustainability_score":8.1}]`)
	writeFixture(t, dir, "store.json", `[{"name":"Whole Foods","sustainability_score":7.4}]`)

	repo := repository.NewFixtureRepo(&models.Config{Fixtures: models.FixturesConfig{Dir: dir}})

	fixtures, err := repo.LoadFixtures(context.Background())

	require.NoError(t, err)
	assert.JSONEq(t, `[{"merchant":"Whole Foods","total":42.1}]`, string(fixtures.Transactions))
	assert.JSONEq(t, `[{"name":"Oatly","sustainability_score":8.1}]`, string(fixtures.Brands))
	assert.JSONEq(t, `[{"name":"Whole Foods","sustainability_score":7.4}]`, string(fixtures.Stores))
}

func TestLoadFixtures_MissingFileIsEmptyList(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "brand.json", `[{"name":"Oatly"}]`)

	repo := repository.NewFixtureRepo(&models.Config{Fixtures: models.FixturesConfig{Dir: dir}})

	fixtures, err := repo.LoadFixtures(context.Background())

	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(fixtures.Transactions))
	assert.JSONEq(t, `[{"name":"Oatly"}]`, string(fixtures.Brands))
	assert.JSONEq(t, `[]`, string(fixtures.Stores))
}

func TestLoadFixtures_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "transactions.json", `[{"merchant":`)

	repo := repository.NewFixtureRepo(&models.Config{Fixtures: models.FixturesConfig{Dir: dir}})

	_, err := repo.LoadFixtures(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "transactions.json")
}
