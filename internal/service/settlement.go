package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// SettlementService periodically ingests boxscores and settles pending
// parlays against finished games.
type SettlementService struct {
	Parlays  *ParlayService
	Sync     *SportsbookSyncService
	Interval time.Duration
	Logger   *zap.Logger
}

func (s *SettlementService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// Run blocks until ctx is canceled, running one settlement pass immediately
// and then one per interval.
func (s *SettlementService) Run(ctx context.Context) {
	if s == nil || s.Parlays == nil {
		return
	}
	interval := s.Interval
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	s.RunOnce(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.logger().Info("settlement loop stopped")
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single settlement pass.
func (s *SettlementService) RunOnce(ctx context.Context) {
	if s.Sync != nil {
		if _, err := s.Sync.RefreshGames(ctx); err != nil {
			s.logger().Warn("settlement game refresh failed", zap.Error(err))
		}
		if _, err := s.Sync.RefreshBoxscores(ctx); err != nil {
			s.logger().Warn("settlement boxscore refresh failed", zap.Error(err))
		}
	}
	if _, err := s.Parlays.UpdateStatuses(ctx); err != nil {
		s.logger().Warn("parlay settlement pass failed", zap.Error(err))
	}
}
