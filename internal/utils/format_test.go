package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRuntime(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    string
	}{
		{"hours and minutes", 125, "2h 5m"},
		{"exact hours", 120, "2h"},
		{"under an hour", 45, "45m"},
		{"single minute", 1, "1m"},
		{"zero", 0, ""},
		{"negative", -10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRuntime(tt.minutes))
		})
	}
}

func TestReleaseYear(t *testing.T) {
	assert.Equal(t, "1999", ReleaseYear("1999-10-15"))
	assert.Equal(t, "2024", ReleaseYear("2024"))
	assert.Equal(t, "", ReleaseYear(""))
	assert.Equal(t, "", ReleaseYear("bad"))
	assert.Equal(t, "", ReleaseYear("n/a-date"))
}

func TestTMDBImageURL(t *testing.T) {
	assert.Equal(t, PlaceholderPoster, TMDBImageURL("", "w500"))
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/poster.jpg", TMDBImageURL("/poster.jpg", "w500"))
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/poster.jpg", TMDBImageURL("poster.jpg", ""))
	assert.Equal(t, "https://image.tmdb.org/t/p/w1280/backdrop.jpg", TMDBImageURL("/backdrop.jpg", "w1280"))

	// Custom artwork overrides are already absolute.
	custom := "https://storage.example.com/movie-artwork/poster_abc123.jpg"
	assert.Equal(t, custom, TMDBImageURL(custom, "w500"))
}
