// File: stayx/models/catalog.go
package models

import "time"

// OfferingStatus marks a service offering as live or announced.
type OfferingStatus string

const (
	OfferingActive     OfferingStatus = "active"
	OfferingComingSoon OfferingStatus = "coming_soon"
)

// ServiceOffering is a row in the services catalog. The catalog lives in its
// own store, separate from the Firestore booking data.
type ServiceOffering struct {
	ID          string         `bson:"_id" json:"id"`
	Name        string         `bson:"name" json:"name"`
	Description string         `bson:"description" json:"description"`
	Icon        string         `bson:"icon,omitempty" json:"icon,omitempty"`
	Status      OfferingStatus `bson:"status" json:"status"`
	SortOrder   int            `bson:"sortOrder" json:"sortOrder"`
	CreatedAt   time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time      `bson:"updatedAt" json:"updatedAt"`
}
