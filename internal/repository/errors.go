// Package repository contains data access logic separated from HTTP
// handlers. Each entity gets its own repository type over a shared
// *sql.DB, and lookups that miss return a per-entity sentinel error so
// handlers can translate them into HTTP 404 responses.
package repository

import "errors"

// ErrScheduleNotFound is returned when a schedule cannot be found.
var ErrScheduleNotFound = errors.New("schedule not found")

// ErrSectionNotFound is returned when a section cannot be found.
var ErrSectionNotFound = errors.New("section not found")

// ErrEventNotFound is returned when an event cannot be found.
var ErrEventNotFound = errors.New("event not found")

// ErrVenueNotFound is returned when a venue cannot be found.
var ErrVenueNotFound = errors.New("venue not found")
