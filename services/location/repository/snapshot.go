package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/locationd/internal/pkg/constants"
	"github.com/piresc/locationd/internal/pkg/database"
	"github.com/piresc/locationd/services/location"
	"github.com/piresc/locationd/services/location/models"
)

// DefaultSnapshotTTL is used when a repository is created with a zero TTL
const DefaultSnapshotTTL = time.Hour

type snapshotRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewSnapshotRepository creates a repository keeping the latest state of
// each device in Redis. Entries expire after ttl without updates.
func NewSnapshotRepository(redisClient *database.RedisClient, ttl time.Duration) location.SnapshotRepo {
	if ttl <= 0 {
		ttl = DefaultSnapshotTTL
	}
	return &snapshotRepo{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// SaveLocation stores the last fix and indexes the device position
func (r *snapshotRepo) SaveLocation(ctx context.Context, deviceID string, loc models.Location) error {
	if err := r.setJSON(ctx, fmt.Sprintf(constants.KeyDeviceLocation, deviceID), loc); err != nil {
		return fmt.Errorf("failed to store location: %w", err)
	}

	err := r.redisClient.GeoAdd(ctx, constants.KeyDeviceGeo, loc.Coordinate.Longitude, loc.Coordinate.Latitude, deviceID)
	if err != nil {
		return fmt.Errorf("failed to index device position: %w", err)
	}
	return nil
}

// GetLocation returns the last stored fix, or nil if none is stored
func (r *snapshotRepo) GetLocation(ctx context.Context, deviceID string) (*models.Location, error) {
	var loc models.Location
	found, err := r.getJSON(ctx, fmt.Sprintf(constants.KeyDeviceLocation, deviceID), &loc)
	if err != nil || !found {
		return nil, err
	}
	return &loc, nil
}

func (r *snapshotRepo) SaveAuthorization(ctx context.Context, deviceID string, status models.AuthorizationStatus) error {
	key := fmt.Sprintf(constants.KeyDeviceAuthorization, deviceID)
	if err := r.redisClient.Set(ctx, key, status.String(), r.ttl); err != nil {
		return fmt.Errorf("failed to store authorization: %w", err)
	}
	return nil
}

func (r *snapshotRepo) GetAuthorization(ctx context.Context, deviceID string) (*models.AuthorizationStatus, error) {
	value, err := r.redisClient.Get(ctx, fmt.Sprintf(constants.KeyDeviceAuthorization, deviceID))
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get authorization: %w", err)
	}

	var status models.AuthorizationStatus
	if err := status.UnmarshalText([]byte(value)); err != nil {
		return nil, fmt.Errorf("invalid stored authorization: %w", err)
	}
	return &status, nil
}

// SaveRegions replaces the stored set of monitored regions
func (r *snapshotRepo) SaveRegions(ctx context.Context, deviceID string, regions []models.Region) error {
	if err := r.setJSON(ctx, fmt.Sprintf(constants.KeyDeviceRegions, deviceID), models.RegionSet(regions)); err != nil {
		return fmt.Errorf("failed to store regions: %w", err)
	}
	return nil
}

func (r *snapshotRepo) GetRegions(ctx context.Context, deviceID string) ([]models.Region, error) {
	var regions []models.Region
	if _, err := r.getJSON(ctx, fmt.Sprintf(constants.KeyDeviceRegions, deviceID), &regions); err != nil {
		return nil, err
	}
	return regions, nil
}

func (r *snapshotRepo) setJSON(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.redisClient.Set(ctx, key, data, r.ttl)
}

func (r *snapshotRepo) getJSON(ctx context.Context, key string, v interface{}) (bool, error) {
	data, err := r.redisClient.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return false, fmt.Errorf("invalid data at %s: %w", key, err)
	}
	return true, nil
}
