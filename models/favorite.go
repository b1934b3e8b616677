// File: stayx/models/favorite.go
package models

import "time"

// Favorite mirrors a favorites/{id} document linking a user to a property.
type Favorite struct {
	ID         string    `firestore:"id" json:"id"`
	UserID     string    `firestore:"userId" json:"userId"`
	PropertyID string    `firestore:"propertyId" json:"propertyId"`
	CreatedAt  time.Time `firestore:"createdAt" json:"createdAt"`
}
