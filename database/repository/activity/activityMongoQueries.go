// File: database/repository/activity/activityMongoQueries.go
package activityRepo

import (
	"errors"
	"fmt"
	"time"

	"tourbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetActivityByID retrieves an activity with its packages resolved.
func (r *MongoActivityRepo) GetActivityByID(id string) (*models.Activity, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var activity models.Activity
	if err := r.activities.FindOne(ctx, bson.M{"id": id}).Decode(&activity); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch activity with id %s: %w", id, err)
	}

	packages, err := r.packagesForActivity(activity.ID)
	if err != nil {
		return nil, err
	}
	activity.Packages = packages
	return &activity, nil
}

// ListActivities returns all activities with their packages resolved.
func (r *MongoActivityRepo) ListActivities() ([]models.Activity, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.activities.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}

	for i := range activities {
		packages, err := r.packagesForActivity(activities[i].ID)
		if err != nil {
			return nil, err
		}
		activities[i].Packages = packages
	}
	return activities, nil
}

// GetPackageByID retrieves a single package.
func (r *MongoActivityRepo) GetPackageByID(id string) (*models.Package, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var pkg models.Package
	if err := r.packages.FindOne(ctx, bson.M{"id": id}).Decode(&pkg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch package with id %s: %w", id, err)
	}
	return &pkg, nil
}

// CountActivities returns the total number of activity documents.
func (r *MongoActivityRepo) CountActivities() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.activities.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count activities: %w", err)
	}
	return count, nil
}

func (r *MongoActivityRepo) packagesForActivity(activityID string) ([]models.Package, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.packages.Find(ctx, bson.M{"activity_id": activityID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch packages for activity %s: %w", activityID, err)
	}
	defer cursor.Close(ctx)

	var packages []models.Package
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, fmt.Errorf("failed to decode packages: %w", err)
	}
	return packages, nil
}
