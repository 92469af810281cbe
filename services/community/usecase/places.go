package usecase

import (
	"context"

	"github.com/piresc/ecotrack/internal/pkg/logger"
	"github.com/piresc/ecotrack/internal/pkg/models"
	"github.com/piresc/ecotrack/internal/utils"
	"github.com/piresc/ecotrack/services/community"
)

// samplePlaces are the Boston storefronts shown on the map
var samplePlaces = []models.Place{
	{
		ID:          1,
		Name:        "Green Earth Market",
		Category:    "Organic Store",
		Latitude:    42.3601,
		Longitude:   -71.0589,
		Description: "Local organic groceries and sustainable products",
		Rating:      4.8,
	},
	{
		ID:          2,
		Name:        "Eco Refill Station",
		Category:    "Zero Waste",
		Latitude:    42.3611,
		Longitude:   -71.0599,
		Description: "Package-free shopping and refill station",
		Rating:      4.9,
	},
	{
		ID:          3,
		Name:        "Solar Cafe",
		Category:    "Sustainable Restaurant",
		Latitude:    42.3591,
		Longitude:   -71.0579,
		Description: "100% solar-powered cafe with local ingredients",
		Rating:      4.7,
	},
}

func (uc *communityUC) SeedPlaces(ctx context.Context) error {
	if err := uc.placesRepo.SavePlaces(ctx, samplePlaces); err != nil {
		return err
	}
	logger.Info("Seeded sample places", logger.Int("count", len(samplePlaces)))
	return nil
}

func (uc *communityUC) DefaultPlacesQuery() models.PlacesQuery {
	query := models.PlacesQuery{
		Latitude:  uc.cfg.Places.DefaultLatitude,
		Longitude: uc.cfg.Places.DefaultLongitude,
		RadiusKm:  uc.cfg.Places.RadiusKm,
	}
	if query.RadiusKm <= 0 {
		query.RadiusKm = defaultRadiusKm
	}
	return query
}

// FindPlaces returns places around the query point, nearest first, each
// annotated with its distance and geohash cell
func (uc *communityUC) FindPlaces(ctx context.Context, query models.PlacesQuery) ([]models.NearbyPlace, error) {
	origin := utils.GeoPoint{Latitude: query.Latitude, Longitude: query.Longitude}
	if !origin.Valid() || !(query.RadiusKm > 0) {
		return nil, community.ErrInvalidCoordinates
	}

	places, err := uc.placesRepo.FindPlacesWithin(ctx, query)
	if err != nil {
		return nil, err
	}

	nearby := make([]models.NearbyPlace, 0, len(places))
	for _, place := range places {
		point := utils.GeoPoint{Latitude: place.Latitude, Longitude: place.Longitude}
		nearby = append(nearby, models.NearbyPlace{
			Place:      place,
			DistanceKm: utils.RoundTo(utils.CalculateDistance(origin, point), 3),
			Geohash:    utils.EncodeGeohash(point, utils.GeohashPrecision),
		})
	}

	return nearby, nil
}
