// File: stayx/models/user.go
package models

import "time"

// Role is the dashboard tag stored on a user document.
type Role string

const (
	RoleCustomer      Role = "CUSTOMER"
	RolePropertyAdmin Role = "PROPERTY_ADMIN"
	RoleSuperAdmin    Role = "SUPER_ADMIN"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RolePropertyAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// User mirrors a users/{uid} document. The document ID is the Firebase UID.
type User struct {
	UID          string    `firestore:"uid" json:"uid"`
	Email        string    `firestore:"email" json:"email"`
	Name         string    `firestore:"name" json:"name"`
	Role         Role      `firestore:"role" json:"role"`
	ProfileImage string    `firestore:"profileImage,omitempty" json:"profileImage,omitempty"`
	Preferences  []string  `firestore:"preferences,omitempty" json:"preferences,omitempty"`
	FCMToken     string    `firestore:"fcmToken,omitempty" json:"-"`
	CreatedAt    time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// UserUpdateRequest carries the profile fields a user may change about themselves.
type UserUpdateRequest struct {
	Name         string   `json:"name,omitempty"`
	ProfileImage string   `json:"profileImage,omitempty"`
	Preferences  []string `json:"preferences,omitempty"`
	FCMToken     string   `json:"fcmToken,omitempty"`
}
