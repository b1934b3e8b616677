// File: stayx/models/session.go
package models

import "time"

// Identity is the verified subject of a Firebase ID token.
type Identity struct {
	UID   string
	Email string
	Name  string
}

// AuthSnapshot is the immutable result of session bootstrap. Handlers pass
// it by value; there is no ambient signed-in-user singleton.
type AuthSnapshot struct {
	UID          string    `json:"uid"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	RedirectPath string    `json:"redirectPath"`
	NewUser      bool      `json:"newUser"`
	IssuedAt     time.Time `json:"issuedAt"`
}
