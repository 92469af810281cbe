package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/piresc/ecotrack/internal/pkg/constants"
	"github.com/piresc/ecotrack/internal/pkg/database"
	"github.com/piresc/ecotrack/internal/pkg/logger"
	"github.com/piresc/ecotrack/internal/pkg/models"
)

// PlacesRepo keeps places in a Redis GEO set, with the full record in a hash
// keyed by place id
type PlacesRepo struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewPlacesRepo creates a new places repository
func NewPlacesRepo(cfg *models.Config, redisClient *database.RedisClient) *PlacesRepo {
	return &PlacesRepo{
		cfg:         cfg,
		redisClient: redisClient,
	}
}

func (r *PlacesRepo) SavePlaces(ctx context.Context, places []models.Place) error {
	for _, place := range places {
		member := strconv.Itoa(place.ID)

		if err := r.redisClient.GeoAdd(ctx, constants.KeyPlacesGeo, place.Longitude, place.Latitude, member); err != nil {
			return fmt.Errorf("failed to index place %d: %w", place.ID, err)
		}

		data, err := json.Marshal(place)
		if err != nil {
			return fmt.Errorf("failed to marshal place %d: %w", place.ID, err)
		}
		if err := r.redisClient.HSet(ctx, constants.KeyPlacesDetail, member, data); err != nil {
			return fmt.Errorf("failed to store place %d: %w", place.ID, err)
		}
	}

	return nil
}

func (r *PlacesRepo) FindPlacesWithin(ctx context.Context, query models.PlacesQuery) ([]models.Place, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyPlacesGeo, query.Longitude, query.Latitude, query.RadiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to search places: %w", err)
	}

	places := make([]models.Place, 0, len(locations))
	if len(locations) == 0 {
		return places, nil
	}

	members := make([]string, 0, len(locations))
	for _, loc := range locations {
		members = append(members, loc.Name)
	}

	details, err := r.redisClient.HMGet(ctx, constants.KeyPlacesDetail, members...)
	if err != nil {
		return nil, fmt.Errorf("failed to load place details: %w", err)
	}

	for i, detail := range details {
		raw, ok := detail.(string)
		if !ok {
			logger.Warn("Place indexed without details", logger.String("place_id", members[i]))
			continue
		}

		var place models.Place
		if err := json.Unmarshal([]byte(raw), &place); err != nil {
			logger.Warn("Skipping unreadable place",
				logger.String("place_id", members[i]),
				logger.Err(err))
			continue
		}
		places = append(places, place)
	}

	return places, nil
}
