package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"moviematch-backend/internal/models"
	"moviematch-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// Genre weight deltas per vote type. A skip is a weaker negative signal than
// an upvote is a positive one; not_seen says nothing about taste.
const (
	upvoteWeight = 1.0
	skipWeight   = -0.25
)

type PreferenceService interface {
	GetByDevice(ctx context.Context, deviceID string) (*models.UserPreferences, error)
	// ApplyVote folds an accepted vote into the device's profile: bumps the
	// vote count and last-seen stamp, and shifts the weights of the movie's
	// genres according to the vote type.
	ApplyVote(ctx context.Context, deviceID, voteType string, genres []models.Genre) error
	// GenreWeights decodes the profile's weight blob keyed by TMDB genre ID.
	GenreWeights(prefs *models.UserPreferences) map[string]float64
}

type preferenceService struct {
	repo   repository.PreferenceRepository
	logger *logrus.Logger
}

func NewPreferenceService(repo repository.PreferenceRepository, logger *logrus.Logger) PreferenceService {
	return &preferenceService{
		repo:   repo,
		logger: logger,
	}
}

func (s *preferenceService) GetByDevice(ctx context.Context, deviceID string) (*models.UserPreferences, error) {
	return s.repo.FindByDevice(ctx, deviceID)
}

func (s *preferenceService) GenreWeights(prefs *models.UserPreferences) map[string]float64 {
	weights := make(map[string]float64)
	if prefs == nil || len(prefs.GenreWeights) == 0 {
		return weights
	}

	if err := json.Unmarshal(prefs.GenreWeights, &weights); err != nil {
		s.logger.WithError(err).WithField("device_id", prefs.DeviceID).Warn("Corrupt genre weight blob, resetting")
		return make(map[string]float64)
	}
	return weights
}

func (s *preferenceService) ApplyVote(ctx context.Context, deviceID, voteType string, genres []models.Genre) error {
	prefs, err := s.repo.FindByDevice(ctx, deviceID)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}
	if prefs == nil {
		prefs = &models.UserPreferences{DeviceID: deviceID}
	}

	weights := s.GenreWeights(prefs)

	var delta float64
	switch voteType {
	case models.VoteTypeUpvote:
		delta = upvoteWeight
	case models.VoteTypeSkip:
		delta = skipWeight
	}
	if delta != 0 {
		for _, g := range genres {
			key := strconv.Itoa(g.TMDBID)
			weights[key] += delta
		}
	}

	raw, err := json.Marshal(weights)
	if err != nil {
		return fmt.Errorf("failed to encode genre weights: %w", err)
	}

	prefs.GenreWeights = datatypes.JSON(raw)
	prefs.VoteCount++
	prefs.LastSeenAt = time.Now().UTC()

	return s.repo.Upsert(ctx, prefs)
}
