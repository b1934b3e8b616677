package repository

import "errors"

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

// ErrAlreadyExists is returned when creating a document whose ID is taken.
var ErrAlreadyExists = errors.New("document already exists")
