package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"puckline/internal/ai"
	"puckline/internal/models"
)

type countingCompleter struct {
	inner ai.Completer
	calls int
}

func (c *countingCompleter) Model() string { return "test-model" }

func (c *countingCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	c.calls++
	return c.inner.Complete(ctx, prompt)
}

func TestAnalyzeGameCaches(t *testing.T) {
	repo := fixtureRepo()
	completer := &countingCompleter{inner: ai.Fallback{}}
	svc := &AnalysisService{Repo: repo, AI: completer, CacheTTL: time.Hour}

	first, err := svc.AnalyzeGame(context.Background(), 100, false)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if first.Kind != "game_100" {
		t.Fatalf("kind=%q", first.Kind)
	}
	if first.Confidence <= 0 {
		t.Fatalf("confidence=%v", first.Confidence)
	}

	second, err := svc.AnalyzeGame(context.Background(), 100, false)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if completer.calls != 1 {
		t.Fatalf("calls=%d want 1 (cached)", completer.calls)
	}
	if second.ID != first.ID {
		t.Fatalf("expected cached analysis, got %d and %d", first.ID, second.ID)
	}

	if _, err := svc.AnalyzeGame(context.Background(), 100, true); err != nil {
		t.Fatalf("err=%v", err)
	}
	if completer.calls != 2 {
		t.Fatalf("calls=%d want 2 (refresh bypasses cache)", completer.calls)
	}
}

func TestAnalyzeTeamUnknown(t *testing.T) {
	repo := fixtureRepo()
	svc := &AnalysisService{Repo: repo, AI: ai.Fallback{}, CacheTTL: time.Hour}
	if _, err := svc.AnalyzeTeam(context.Background(), 999, false); err == nil {
		t.Fatalf("expected error")
	}
}

func TestOptimizeParlayPersistsLegs(t *testing.T) {
	repo := fixtureRepo()
	// The fallback plan references games 1-3; add matching scheduled games.
	for id := uint64(1); id <= 3; id++ {
		repo.games = append(repo.games, models.Game{
			ID: id, ExternalID: "x", HomeTeamID: 1, AwayTeamID: 2,
			GameTime: time.Now().UTC().Add(12 * time.Hour),
			Status:   models.GameStatusScheduled,
		})
	}
	svc := &AnalysisService{Repo: repo, AI: ai.Fallback{}, CacheTTL: time.Hour}

	parlay, err := svc.OptimizeParlay(context.Background(), OptimizeParlayParams{
		Stake:   decimal.NewFromInt(100),
		GameIDs: []uint64{1, 2, 3},
	})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(parlay.Legs) != 3 {
		t.Fatalf("legs=%d want 3", len(parlay.Legs))
	}
	if parlay.Status != models.ParlayStatusPending {
		t.Fatalf("status=%q", parlay.Status)
	}
	if parlay.TotalOdds <= 1 {
		t.Fatalf("total odds=%v", parlay.TotalOdds)
	}
	if parlay.Confidence <= 0 {
		t.Fatalf("confidence=%v", parlay.Confidence)
	}
	for _, leg := range parlay.Legs {
		if leg.Status != models.LegStatusPending {
			t.Fatalf("leg status=%q", leg.Status)
		}
		if leg.Price == 0 {
			t.Fatalf("leg price not set")
		}
	}
	stored, _ := repo.GetParlayByID(context.Background(), parlay.ID)
	if stored == nil {
		t.Fatalf("parlay not persisted")
	}
}

func TestOptimizeParlayRespectsMaxLegs(t *testing.T) {
	repo := fixtureRepo()
	for id := uint64(1); id <= 3; id++ {
		repo.games = append(repo.games, models.Game{
			ID: id, ExternalID: "x", HomeTeamID: 1, AwayTeamID: 2,
			GameTime: time.Now().UTC().Add(12 * time.Hour),
			Status:   models.GameStatusScheduled,
		})
	}
	maxLegs := 2
	svc := &AnalysisService{Repo: repo, AI: ai.Fallback{}, CacheTTL: time.Hour}
	parlay, err := svc.OptimizeParlay(context.Background(), OptimizeParlayParams{
		Stake:   decimal.NewFromInt(20),
		GameIDs: []uint64{1, 2, 3},
		MaxLegs: &maxLegs,
	})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(parlay.Legs) != 2 {
		t.Fatalf("legs=%d want 2", len(parlay.Legs))
	}
}

func TestCleanupAnalyses(t *testing.T) {
	repo := fixtureRepo()
	repo.analyses = []models.Analysis{
		{ID: 1, Kind: "game_100", CreatedAt: time.Now().UTC().Add(-72 * time.Hour)},
		{ID: 2, Kind: "game_100", CreatedAt: time.Now().UTC()},
	}
	svc := &AnalysisService{Repo: repo, CacheTTL: 24 * time.Hour}
	removed, err := svc.CleanupAnalyses(context.Background())
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if removed != 1 {
		t.Fatalf("removed=%d want 1", removed)
	}
	if len(repo.analyses) != 1 || repo.analyses[0].ID != 2 {
		t.Fatalf("analyses=%v", repo.analyses)
	}
}
