// Package repository holds the data access layer. The sentinel errors below
// let the API layer tell a missing record apart from conflicting state or a
// plain store failure.
package repository

import "errors"

// ErrVenueNotFound is returned when a venue id has no matching row.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound is returned when an artist id has no matching row.
var ErrArtistNotFound = errors.New("artist not found")

// ErrVenueHasShows is returned when a venue cannot be deleted because shows
// still reference it. Deletes are restricted, never cascaded.
var ErrVenueHasShows = errors.New("venue still has shows")
