package usecase

import (
	"context"
	"fmt"
	"time"

	"community-feed/pkg/logger"
	"community-feed/services/community/internal/entity"
	"community-feed/services/community/internal/repo/persistent"
)

type LeaderboardUseCase interface {
	GetLeaderboard(ctx context.Context, window time.Duration, limit int) ([]entity.LeaderboardEntry, error)
}

type leaderboardUseCase struct {
	karmaRepo persistent.KarmaRepository
	now       func() time.Time
	logger    *logger.Logger
}

func NewLeaderboardUseCase(karmaRepo persistent.KarmaRepository, logger *logger.Logger) LeaderboardUseCase {
	return &leaderboardUseCase{
		karmaRepo: karmaRepo,
		now:       time.Now,
		logger:    logger,
	}
}

// GetLeaderboard ranks users by karma earned from likes in the trailing
// window ending now. Results are computed on every call.
func (uc *leaderboardUseCase) GetLeaderboard(ctx context.Context, window time.Duration, limit int) ([]entity.LeaderboardEntry, error) {
	if window <= 0 {
		return nil, validationError("window must be positive")
	}
	if limit <= 0 || limit > MaxLeaderboardLimit {
		return nil, validationError("limit must be between 1 and %d", MaxLeaderboardLimit)
	}

	since := uc.now().Add(-window)
	events, err := uc.karmaRepo.EventsSince(ctx, since)
	if err != nil {
		uc.logger.Error("Failed to load karma events: %v", err)
		return nil, fmt.Errorf("failed to compute leaderboard: %w", err)
	}

	return AggregateKarma(events, since, limit), nil
}
