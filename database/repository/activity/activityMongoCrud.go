// File: database/repository/activity/activityMongoCrud.go
package activityRepo

import (
	"errors"
	"fmt"
	"time"

	"tourbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateActivity inserts a new activity along with its initial packages.
func (r *MongoActivityRepo) CreateActivity(activity *models.Activity, packages []models.Package) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	now := time.Now()
	activity.CreatedAt = now
	activity.UpdatedAt = now
	activity.PackageIDs = make([]string, 0, len(packages))

	if len(packages) > 0 {
		docs := make([]interface{}, 0, len(packages))
		for i := range packages {
			packages[i].ActivityID = activity.ID
			packages[i].CreatedAt = now
			packages[i].UpdatedAt = now
			activity.PackageIDs = append(activity.PackageIDs, packages[i].ID)
			docs = append(docs, packages[i])
		}
		if _, err := r.packages.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("failed to create packages: %w", err)
		}
	}

	if _, err := r.activities.InsertOne(ctx, activity); err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

// UpdateActivity modifies an existing activity document.
func (r *MongoActivityRepo) UpdateActivity(activity *models.Activity) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	activity.UpdatedAt = time.Now()
	filter := bson.M{"id": activity.ID}
	update := bson.M{"$set": activity}

	result, err := r.activities.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update activity with id %s: %w", activity.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteActivity removes an activity and cascades to its packages.
func (r *MongoActivityRepo) DeleteActivity(id string) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.packages.DeleteMany(ctx, bson.M{"activity_id": id}); err != nil {
		return fmt.Errorf("failed to delete packages for activity %s: %w", id, err)
	}

	result, err := r.activities.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete activity with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CreatePackage inserts a new package and links it to its activity.
func (r *MongoActivityRepo) CreatePackage(pkg *models.Package) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	pkg.CreatedAt = now
	pkg.UpdatedAt = now

	if _, err := r.packages.InsertOne(ctx, pkg); err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}

	_, err := r.activities.UpdateOne(ctx,
		bson.M{"id": pkg.ActivityID},
		bson.M{"$addToSet": bson.M{"package_ids": pkg.ID}},
	)
	if err != nil {
		return fmt.Errorf("failed to link package %s to activity %s: %w", pkg.ID, pkg.ActivityID, err)
	}
	return nil
}

// UpdatePackage modifies an existing package document.
func (r *MongoActivityRepo) UpdatePackage(pkg *models.Package) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pkg.UpdatedAt = time.Now()
	result, err := r.packages.UpdateOne(ctx, bson.M{"id": pkg.ID}, bson.M{"$set": pkg})
	if err != nil {
		return fmt.Errorf("failed to update package with id %s: %w", pkg.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePackage removes a package and unlinks it from its activity.
func (r *MongoActivityRepo) DeletePackage(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var pkg models.Package
	if err := r.packages.FindOne(ctx, bson.M{"id": id}).Decode(&pkg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to fetch package with id %s: %w", id, err)
	}

	if _, err := r.packages.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("failed to delete package with id %s: %w", id, err)
	}

	_, err := r.activities.UpdateOne(ctx,
		bson.M{"id": pkg.ActivityID},
		bson.M{"$pull": bson.M{"package_ids": id}},
	)
	if err != nil {
		return fmt.Errorf("failed to unlink package %s from activity %s: %w", id, pkg.ActivityID, err)
	}
	return nil
}
