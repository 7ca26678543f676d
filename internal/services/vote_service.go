package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moviematch-backend/internal/models"
	"moviematch-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// VoteRequest carries a vote submission after handler-level decoding.
type VoteRequest struct {
	MovieID   uint
	DeviceID  string
	VoteType  string
	SessionID string
}

// VoteResult reports the outcome of a vote submission. Duplicate is true
// when the device had already voted on the movie; the stored first vote wins
// and preferences are untouched.
type VoteResult struct {
	Vote      *models.Vote `json:"vote"`
	Duplicate bool         `json:"duplicate"`
	VoteCount int64        `json:"device_vote_count"`
}

type VoteService interface {
	CastVote(ctx context.Context, req VoteRequest) (*VoteResult, error)
	GetVotesByDevice(ctx context.Context, deviceID string, page, limit int) ([]models.Vote, int64, error)
}

type voteService struct {
	voteRepo    repository.VoteRepository
	movieRepo   repository.MovieRepository
	preferences PreferenceService
	devices     DeviceService
	logger      *logrus.Logger
}

func NewVoteService(voteRepo repository.VoteRepository, movieRepo repository.MovieRepository, preferences PreferenceService, devices DeviceService, logger *logrus.Logger) VoteService {
	return &voteService{
		voteRepo:    voteRepo,
		movieRepo:   movieRepo,
		preferences: preferences,
		devices:     devices,
		logger:      logger,
	}
}

func (s *voteService) CastVote(ctx context.Context, req VoteRequest) (*VoteResult, error) {
	if !models.ValidVoteType(req.VoteType) {
		return nil, ErrInvalidVoteType
	}
	if !s.devices.Verify(req.DeviceID) {
		return nil, ErrInvalidDeviceID
	}

	movie, err := s.movieRepo.FindByID(ctx, req.MovieID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to load movie: %w", err)
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	vote := &models.Vote{
		MovieID:   req.MovieID,
		DeviceID:  req.DeviceID,
		VoteType:  req.VoteType,
		SessionID: sessionID,
		CreatedAt: time.Now().UTC(),
	}

	inserted, err := s.voteRepo.Insert(ctx, vote)
	if err != nil {
		return nil, fmt.Errorf("failed to record vote: %w", err)
	}

	if !inserted {
		// The earlier vote won the uniqueness constraint; surface it so a
		// replay with a different type cannot pretend it was recorded.
		stored, err := s.voteRepo.FindByMovieAndDevice(ctx, req.MovieID, req.DeviceID)
		if err != nil {
			return nil, fmt.Errorf("failed to load stored vote: %w", err)
		}
		if stored != nil {
			vote = stored
		}
	}

	if inserted {
		if err := s.preferences.ApplyVote(ctx, req.DeviceID, req.VoteType, movie.Genres); err != nil {
			// The vote is durable; a profile update failure only degrades
			// recommendations until the next vote.
			s.logger.WithError(err).WithFields(logrus.Fields{
				"device_id": req.DeviceID,
				"movie_id":  req.MovieID,
			}).Warn("Failed to update preference profile")
		}
	}

	count, err := s.voteRepo.CountByDevice(ctx, req.DeviceID)
	if err != nil {
		s.logger.WithError(err).WithField("device_id", req.DeviceID).Warn("Failed to count device votes")
	}

	return &VoteResult{
		Vote:      vote,
		Duplicate: !inserted,
		VoteCount: count,
	}, nil
}

func (s *voteService) GetVotesByDevice(ctx context.Context, deviceID string, page, limit int) ([]models.Vote, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	return s.voteRepo.FindByDevice(ctx, deviceID, page, limit)
}
