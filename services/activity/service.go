package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	activityRepo "tourbook/database/repository/activity"
	"tourbook/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	catalogueCacheKey = "activities:all"
	catalogueCacheTTL = 5 * time.Minute
)

// ActivityService exposes the activity/package catalogue operations.
type ActivityService interface {
	ListActivities() ([]models.Activity, error)
	GetActivity(id string) (*models.Activity, error)
	CreateActivity(activity models.Activity, packages []models.Package) (*models.Activity, error)
	UpdateActivity(activity models.Activity) error
	DeleteActivity(id string) error
	CountActivities() (int64, error)

	CreatePackage(pkg models.Package) (*models.Package, error)
	UpdatePackage(pkg models.Package) error
	DeletePackage(id string) error
}

// DefaultActivityService backs the catalogue with Mongo and caches the
// public listing in Redis, invalidating on every admin write.
type DefaultActivityService struct {
	Repo   activityRepo.ActivityRepository
	Cache  *redis.Client
	Logger *zap.Logger
}

// ListActivities returns the full catalogue, served from cache when warm.
func (s *DefaultActivityService) ListActivities() ([]models.Activity, error) {
	ctx := context.Background()

	if cached, err := s.Cache.Get(ctx, catalogueCacheKey).Result(); err == nil {
		var activities []models.Activity
		if err := json.Unmarshal([]byte(cached), &activities); err == nil {
			return activities, nil
		}
		// Corrupt cache entry: fall through to Mongo and rewrite it.
	}

	activities, err := s.Repo.ListActivities()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(activities); err == nil {
		if err := s.Cache.Set(ctx, catalogueCacheKey, data, catalogueCacheTTL).Err(); err != nil {
			s.Logger.Warn("failed to cache activity catalogue", zap.Error(err))
		}
	}
	return activities, nil
}

// GetActivity retrieves one activity with packages resolved.
func (s *DefaultActivityService) GetActivity(id string) (*models.Activity, error) {
	return s.Repo.GetActivityByID(id)
}

// CreateActivity persists a new activity with its initial packages.
func (s *DefaultActivityService) CreateActivity(activity models.Activity, packages []models.Package) (*models.Activity, error) {
	activity.ID = uuid.New().String()
	for i := range packages {
		packages[i].ID = uuid.New().String()
	}

	if err := s.Repo.CreateActivity(&activity, packages); err != nil {
		return nil, err
	}
	s.invalidateCatalogue()
	activity.Packages = packages
	return &activity, nil
}

// UpdateActivity modifies an existing activity.
func (s *DefaultActivityService) UpdateActivity(activity models.Activity) error {
	if activity.ID == "" {
		return fmt.Errorf("activity id is required")
	}
	if err := s.Repo.UpdateActivity(&activity); err != nil {
		return err
	}
	s.invalidateCatalogue()
	return nil
}

// DeleteActivity removes an activity and its packages.
func (s *DefaultActivityService) DeleteActivity(id string) error {
	if err := s.Repo.DeleteActivity(id); err != nil {
		return err
	}
	s.invalidateCatalogue()
	return nil
}

// CountActivities returns the catalogue size for the admin dashboard.
func (s *DefaultActivityService) CountActivities() (int64, error) {
	return s.Repo.CountActivities()
}

// CreatePackage adds a package to an existing activity.
func (s *DefaultActivityService) CreatePackage(pkg models.Package) (*models.Package, error) {
	if pkg.ActivityID == "" {
		return nil, fmt.Errorf("package activity id is required")
	}
	pkg.ID = uuid.New().String()
	if err := s.Repo.CreatePackage(&pkg); err != nil {
		return nil, err
	}
	s.invalidateCatalogue()
	return &pkg, nil
}

// UpdatePackage modifies an existing package.
func (s *DefaultActivityService) UpdatePackage(pkg models.Package) error {
	if pkg.ID == "" {
		return fmt.Errorf("package id is required")
	}
	if err := s.Repo.UpdatePackage(&pkg); err != nil {
		return err
	}
	s.invalidateCatalogue()
	return nil
}

// DeletePackage removes a package.
func (s *DefaultActivityService) DeletePackage(id string) error {
	if err := s.Repo.DeletePackage(id); err != nil {
		return err
	}
	s.invalidateCatalogue()
	return nil
}

func (s *DefaultActivityService) invalidateCatalogue() {
	ctx := context.Background()
	if err := s.Cache.Del(ctx, catalogueCacheKey).Err(); err != nil {
		s.Logger.Warn("failed to invalidate activity catalogue cache", zap.Error(err))
	}
}
