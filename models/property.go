// File: stayx/models/property.go
package models

import (
	"errors"
	"time"
)

// Property mirrors a properties/{id} document.
type Property struct {
	ID          string    `firestore:"id" json:"id"`
	Name        string    `firestore:"name" json:"name"`
	Description string    `firestore:"description" json:"description"`
	Location    string    `firestore:"location" json:"location"`
	Price       float64   `firestore:"price" json:"price"`
	Beds        int       `firestore:"beds" json:"beds"`
	Baths       int       `firestore:"baths" json:"baths"`
	Size        float64   `firestore:"size" json:"size"`
	ImageURL    string    `firestore:"imageUrl" json:"imageUrl"`
	Featured    bool      `firestore:"featured" json:"featured"`
	OwnerID     string    `firestore:"ownerId" json:"ownerId"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// PropertyInput is the create/update payload for a property.
type PropertyInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Location    string  `json:"location" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Beds        int     `json:"beds" binding:"gte=0"`
	Baths       int     `json:"baths" binding:"gte=0"`
	Size        float64 `json:"size" binding:"gte=0"`
	ImageURL    string  `json:"imageUrl"`
	Featured    bool    `json:"featured"`
}

// Validate checks the fields gin's binding cannot express.
func (p PropertyInput) Validate() error {
	if len(p.Name) > 200 {
		return errors.New("property name exceeds 200 characters")
	}
	return nil
}
