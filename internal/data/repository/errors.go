package repository

import "errors"

// ErrDuplicateEmail is returned when an insert loses against the unique
// email index. Under concurrent registration for the same email this is
// what settles the race.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrNotFound is returned by mutations whose target row does not exist.
var ErrNotFound = errors.New("record not found")
