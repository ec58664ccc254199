package cronrunner

import (
	"context"

	"go.uber.org/zap"

	"puckline/internal/config"
	"puckline/internal/service"
)

// Jobs bundles the background refresh work the scheduler drives.
type Jobs struct {
	Sync     *service.SportsbookSyncService
	News     *service.NewsSyncService
	Analysis *service.AnalysisService
	Logger   *zap.Logger
}

// Register adds every enabled job to the runner using the configured specs.
// An empty spec disables that job.
func (j *Jobs) Register(r *Runner, cfg config.CronConfig) error {
	logger := j.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	add := func(name, spec string, run func(context.Context) error) error {
		if spec == "" {
			return nil
		}
		_, err := r.Add(spec, func(ctx context.Context) {
			if err := run(ctx); err != nil {
				logger.Warn("cron job failed",
					zap.String("job", name),
					zap.Error(err))
			}
		})
		return err
	}

	if j.Sync != nil {
		if err := add("games_refresh", cfg.GamesRefresh, func(ctx context.Context) error {
			_, err := j.Sync.RefreshGames(ctx)
			return err
		}); err != nil {
			return err
		}
		if err := add("odds_refresh", cfg.OddsRefresh, func(ctx context.Context) error {
			_, err := j.Sync.RefreshOdds(ctx)
			return err
		}); err != nil {
			return err
		}
		if err := add("props_refresh", cfg.PropsRefresh, func(ctx context.Context) error {
			_, err := j.Sync.RefreshProps(ctx)
			return err
		}); err != nil {
			return err
		}
	}
	if j.News != nil {
		if err := add("news_refresh", cfg.NewsRefresh, func(ctx context.Context) error {
			_, err := j.News.RefreshNews(ctx)
			return err
		}); err != nil {
			return err
		}
	}
	if j.Analysis != nil {
		if err := add("analysis_cleanup", cfg.AnalysisCleanup, func(ctx context.Context) error {
			_, err := j.Analysis.CleanupAnalyses(ctx)
			return err
		}); err != nil {
			return err
		}
	}
	return nil
}
