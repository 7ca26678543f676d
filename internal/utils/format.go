package utils

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	tmdbImageBase = "https://image.tmdb.org/t/p"

	// PlaceholderPoster is served when a title has no artwork path.
	PlaceholderPoster = "/placeholder-movie.jpg"

	// DefaultImageSize is the TMDB size segment used when none is given.
	DefaultImageSize = "w500"
)

// FormatRuntime renders a runtime in minutes as "2h 5m" style text.
// Non-positive runtimes render as an empty string.
func FormatRuntime(minutes int) string {
	if minutes <= 0 {
		return ""
	}

	hours := minutes / 60
	mins := minutes % 60

	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// ReleaseYear extracts the year from a YYYY-MM-DD release date. Malformed
// dates yield an empty string.
func ReleaseYear(releaseDate string) string {
	if len(releaseDate) < 4 {
		return ""
	}
	year := releaseDate[:4]
	if _, err := strconv.Atoi(year); err != nil {
		return ""
	}
	return year
}

// TMDBImageURL builds a full image URL from a TMDB-relative artwork path.
// Absolute URLs (custom artwork overrides) pass through untouched, and an
// empty path falls back to the local placeholder.
func TMDBImageURL(path, size string) string {
	if path == "" {
		return PlaceholderPoster
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if size == "" {
		size = DefaultImageSize
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return tmdbImageBase + "/" + size + path
}
