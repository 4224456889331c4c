package activityRepo

import (
	"errors"

	"tourbook/models"
)

// ErrNotFound is returned when an activity or package id does not resolve.
var ErrNotFound = errors.New("activity not found")

// ActivityRepository defines the interface for activity and package data access.
// Packages live in their own collection and are resolved onto activities on read.
type ActivityRepository interface {
	CreateActivity(activity *models.Activity, packages []models.Package) error
	GetActivityByID(id string) (*models.Activity, error)
	ListActivities() ([]models.Activity, error)
	UpdateActivity(activity *models.Activity) error
	DeleteActivity(id string) error
	CountActivities() (int64, error)

	CreatePackage(pkg *models.Package) error
	GetPackageByID(id string) (*models.Package, error)
	UpdatePackage(pkg *models.Package) error
	DeletePackage(id string) error
}
