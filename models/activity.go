package models

import "time"

// Activity is a bookable tour or excursion offered on the site.
type Activity struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Description   string    `bson:"description" json:"description"`
	OperatingDays []string  `bson:"operating_days" json:"operatingDays"` // e.g. ["Monday", "Wednesday"]
	Duration      string    `bson:"duration" json:"duration"`
	Location      string    `bson:"location" json:"location"`
	PackageIDs    []string  `bson:"package_ids" json:"packageIds"`
	Packages      []Package `bson:"-" json:"packages,omitempty"` // Resolved on read, never stored inline
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// Package is a priced variant of an activity (e.g. with/without transfer).
type Package struct {
	ID          string    `bson:"id" json:"id"`
	ActivityID  string    `bson:"activity_id" json:"activityId"`
	Name        string    `bson:"name" json:"name"`
	AdultPrice  float64   `bson:"adult_price" json:"adultPrice"`
	ChildPrice  float64   `bson:"child_price" json:"childPrice"`
	Inclusions  string    `bson:"inclusions" json:"inclusions"`
	Description string    `bson:"description" json:"description"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}
