package services

import "errors"

var (
	// ErrInvalidVoteType is returned when a vote carries an unknown type.
	ErrInvalidVoteType = errors.New("invalid vote type")
	// ErrInvalidDeviceID is returned when a device ID fails signature
	// verification.
	ErrInvalidDeviceID = errors.New("invalid device id")
	// ErrMovieNotFound is returned when a referenced movie does not exist.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrInvalidPeriod is returned for unknown trending windows.
	ErrInvalidPeriod = errors.New("invalid trending period")
)
