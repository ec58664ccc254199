package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"puckline/internal/models"
	"puckline/internal/odds"
)

func fixtureRepo() *stubRepo {
	repo := &stubRepo{}
	repo.teams = []models.Team{
		{ID: 1, Name: "Boston Bruins", Abbreviation: "BOS"},
		{ID: 2, Name: "Toronto Maple Leafs", Abbreviation: "TOR"},
	}
	repo.players = []models.Player{
		{ID: 10, Name: "David Pastrnak", Position: "RW", TeamID: 1},
	}
	repo.games = []models.Game{
		{ID: 100, ExternalID: "2026020001", HomeTeamID: 1, AwayTeamID: 2,
			GameTime: time.Now().UTC().Add(24 * time.Hour), Status: models.GameStatusScheduled},
	}
	dkHomeML, dkAwayML := -150.0, 130.0
	dkHomeSpread, dkAwaySpread := -1.5, 1.5
	dkSpreadOdds, dkTotal, dkOver, dkUnder := 150.0, 6.0, -110.0, -110.0
	fdHomeML, fdAwayML := -140.0, 120.0
	repo.lines = []models.OddsLine{
		{ID: 200, GameID: 100, Sportsbook: "DraftKings",
			HomeMoneyline: &dkHomeML, AwayMoneyline: &dkAwayML,
			HomeSpread: &dkHomeSpread, AwaySpread: &dkAwaySpread,
			HomeSpreadOdds: &dkSpreadOdds, AwaySpreadOdds: &dkUnder,
			Total: &dkTotal, OverOdds: &dkOver, UnderOdds: &dkUnder},
		{ID: 201, GameID: 100, Sportsbook: "FanDuel",
			HomeMoneyline: &fdHomeML, AwayMoneyline: &fdAwayML},
	}
	repo.props = []models.PlayerProp{
		{ID: 300, OddsLineID: 200, PlayerID: 10, PropType: models.PropTypePoints,
			Line: 0.5, OverOdds: -120, UnderOdds: 100},
	}
	repo.nextID = 1000
	return repo
}

func TestCreateParlayBestPrice(t *testing.T) {
	repo := fixtureRepo()
	svc := &ParlayService{Repo: repo}

	parlay, err := svc.Create(context.Background(), CreateParlayParams{
		Stake: decimal.NewFromInt(50),
		Legs: []LegInput{
			{GameID: 100, BetType: models.BetTypeMoneyline, Selection: models.SelectionHome},
			{GameID: 100, BetType: models.BetTypeMoneyline, Selection: models.SelectionAway},
		},
	})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	// Home favorite is cheaper at FanDuel, away dog pays more at DraftKings.
	if parlay.Legs[0].Price != -140 {
		t.Fatalf("home price=%v want -140", parlay.Legs[0].Price)
	}
	if parlay.Legs[1].Price != 130 {
		t.Fatalf("away price=%v want 130", parlay.Legs[1].Price)
	}
	if parlay.Status != models.ParlayStatusPending {
		t.Fatalf("status=%q", parlay.Status)
	}
	if parlay.TotalOdds <= 1 {
		t.Fatalf("total odds=%v", parlay.TotalOdds)
	}
	if !parlay.PotentialPayout.GreaterThan(parlay.Stake) {
		t.Fatalf("payout=%v stake=%v", parlay.PotentialPayout, parlay.Stake)
	}
}

func TestCreateParlayRejectsFinishedGame(t *testing.T) {
	repo := fixtureRepo()
	repo.games[0].Status = models.GameStatusFinished
	svc := &ParlayService{Repo: repo}

	_, err := svc.Create(context.Background(), CreateParlayParams{
		Stake: decimal.NewFromInt(10),
		Legs: []LegInput{
			{GameID: 100, BetType: models.BetTypeMoneyline, Selection: models.SelectionHome},
		},
	})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestCreateParlayValidatesShape(t *testing.T) {
	repo := fixtureRepo()
	svc := &ParlayService{Repo: repo}

	_, err := svc.Create(context.Background(), CreateParlayParams{
		Stake: decimal.NewFromInt(10),
		Legs: []LegInput{
			{GameID: 100, BetType: models.BetTypePlayerProp, Selection: models.SelectionOver},
		},
	})
	if err == nil {
		t.Fatalf("expected error for prop leg without player")
	}
}

func TestUpdateParlayStakeRecomputesPayout(t *testing.T) {
	repo := fixtureRepo()
	svc := &ParlayService{Repo: repo}
	parlay := createPendingParlay(t, repo, []LegInput{
		{GameID: 100, BetType: models.BetTypeMoneyline, Selection: models.SelectionHome},
	})

	stake := decimal.NewFromInt(100)
	updated, err := svc.Update(context.Background(), parlay.ID, UpdateParlayParams{Stake: &stake})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if !updated.Stake.Equal(stake) {
		t.Fatalf("stake=%v want 100", updated.Stake)
	}
	want := odds.Payout(stake, updated.TotalOdds)
	if !updated.PotentialPayout.Equal(want) {
		t.Fatalf("payout=%v want %v", updated.PotentialPayout, want)
	}
	got, _ := repo.GetParlayByID(context.Background(), parlay.ID)
	if !got.PotentialPayout.Equal(want) {
		t.Fatalf("stored payout=%v want %v", got.PotentialPayout, want)
	}
}

func TestUpdateParlayPartialFields(t *testing.T) {
	repo := fixtureRepo()
	svc := &ParlayService{Repo: repo}
	parlay := createPendingParlay(t, repo, []LegInput{
		{GameID: 100, BetType: models.BetTypeMoneyline, Selection: models.SelectionHome},
	})

	status := models.ParlayStatusWon
	updated, err := svc.Update(context.Background(), parlay.ID, UpdateParlayParams{Status: &status})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if updated.Status != models.ParlayStatusWon {
		t.Fatalf("status=%q want won", updated.Status)
	}
	if updated.Name != "Custom Parlay" {
		t.Fatalf("name=%q changed by status update", updated.Name)
	}

	bad := "voided"
	if _, err := svc.Update(context.Background(), parlay.ID, UpdateParlayParams{Status: &bad}); err == nil {
		t.Fatalf("expected error for unknown status")
	}
	zero := decimal.Zero
	if _, err := svc.Update(context.Background(), parlay.ID, UpdateParlayParams{Stake: &zero}); err == nil {
		t.Fatalf("expected error for zero stake")
	}
}

func TestUpdateParlayUnknownID(t *testing.T) {
	repo := fixtureRepo()
	svc := &ParlayService{Repo: repo}

	name := "Renamed"
	updated, err := svc.Update(context.Background(), 9999, UpdateParlayParams{Name: &name})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if updated != nil {
		t.Fatalf("expected nil for unknown parlay")
	}
}

func finishGame(repo *stubRepo, home, away int) {
	repo.games[0].Status = models.GameStatusFinished
	repo.games[0].HomeScore = &home
	repo.games[0].AwayScore = &away
}

func createPendingParlay(t *testing.T, repo *stubRepo, legs []LegInput) *models.Parlay {
	t.Helper()
	svc := &ParlayService{Repo: repo}
	parlay, err := svc.Create(context.Background(), CreateParlayParams{
		Stake: decimal.NewFromInt(25),
		Legs:  legs,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return parlay
}

func TestUpdateStatusesWin(t *testing.T) {
	repo := fixtureRepo()
	parlay := createPendingParlay(t, repo, []LegInput{
		{GameID: 100, BetType: models.BetTypeMoneyline, Selection: models.SelectionHome},
		{GameID: 100, BetType: models.BetTypeOverUnder, Selection: models.SelectionOver},
	})
	finishGame(repo, 5, 2)

	svc := &ParlayService{Repo: repo}
	settled, err := svc.UpdateStatuses(context.Background())
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if settled != 1 {
		t.Fatalf("settled=%d", settled)
	}
	got, _ := repo.GetParlayByID(context.Background(), parlay.ID)
	if got.Status != models.ParlayStatusWon {
		t.Fatalf("status=%q want won", got.Status)
	}
	for _, leg := range got.Legs {
		if leg.Status != models.LegStatusWon {
			t.Fatalf("leg %d status=%q", leg.ID, leg.Status)
		}
	}
}

func TestUpdateStatusesLossGradesEveryLeg(t *testing.T) {
	repo := fixtureRepo()
	// Away moneyline loses 4-1 while the over clears the 6.0 total; the
	// winning leg must still be graded on the lost parlay.
	parlay := createPendingParlay(t, repo, []LegInput{
		{GameID: 100, BetType: models.BetTypeMoneyline, Selection: models.SelectionAway},
		{GameID: 100, BetType: models.BetTypeOverUnder, Selection: models.SelectionOver},
	})
	finishGame(repo, 4, 3)

	svc := &ParlayService{Repo: repo}
	if _, err := svc.UpdateStatuses(context.Background()); err != nil {
		t.Fatalf("err=%v", err)
	}
	got, _ := repo.GetParlayByID(context.Background(), parlay.ID)
	if got.Status != models.ParlayStatusLost {
		t.Fatalf("status=%q want lost", got.Status)
	}
	if got.Legs[0].Status != models.LegStatusLost {
		t.Fatalf("moneyline leg status=%q want lost", got.Legs[0].Status)
	}
	if got.Legs[1].Status != models.LegStatusWon {
		t.Fatalf("over leg status=%q want won", got.Legs[1].Status)
	}
}

func TestUpdateStatusesTotalPushPartialWin(t *testing.T) {
	repo := fixtureRepo()
	parlay := createPendingParlay(t, repo, []LegInput{
		{GameID: 100, BetType: models.BetTypeMoneyline, Selection: models.SelectionHome},
		{GameID: 100, BetType: models.BetTypeOverUnder, Selection: models.SelectionOver},
	})
	// Combined score lands exactly on the 6.0 total.
	finishGame(repo, 4, 2)

	svc := &ParlayService{Repo: repo}
	if _, err := svc.UpdateStatuses(context.Background()); err != nil {
		t.Fatalf("err=%v", err)
	}
	got, _ := repo.GetParlayByID(context.Background(), parlay.ID)
	if got.Status != models.ParlayStatusPartiallyWon {
		t.Fatalf("status=%q want partially_won", got.Status)
	}
}

func TestUpdateStatusesPropWaitsForStatLine(t *testing.T) {
	repo := fixtureRepo()
	playerID := uint64(10)
	propType := models.PropTypePoints
	parlay := createPendingParlay(t, repo, []LegInput{
		{GameID: 100, BetType: models.BetTypePlayerProp, Selection: models.SelectionOver,
			PlayerID: &playerID, PropType: &propType},
	})
	finishGame(repo, 3, 2)

	svc := &ParlayService{Repo: repo}
	if _, err := svc.UpdateStatuses(context.Background()); err != nil {
		t.Fatalf("err=%v", err)
	}
	got, _ := repo.GetParlayByID(context.Background(), parlay.ID)
	if got.Status != models.ParlayStatusPending {
		t.Fatalf("status=%q want pending without stat line", got.Status)
	}

	repo.stats = []models.PlayerStatLine{
		{ID: 400, GameID: 100, PlayerID: 10, Goals: 1, Assists: 1},
	}
	if _, err := svc.UpdateStatuses(context.Background()); err != nil {
		t.Fatalf("err=%v", err)
	}
	got, _ = repo.GetParlayByID(context.Background(), parlay.ID)
	if got.Status != models.ParlayStatusWon {
		t.Fatalf("status=%q want won after stat line", got.Status)
	}
}

func TestUpdateStatusesSkipsUnfinishedGames(t *testing.T) {
	repo := fixtureRepo()
	parlay := createPendingParlay(t, repo, []LegInput{
		{GameID: 100, BetType: models.BetTypeMoneyline, Selection: models.SelectionHome},
	})

	svc := &ParlayService{Repo: repo}
	settled, err := svc.UpdateStatuses(context.Background())
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if settled != 0 {
		t.Fatalf("settled=%d want 0", settled)
	}
	got, _ := repo.GetParlayByID(context.Background(), parlay.ID)
	if got.Status != models.ParlayStatusPending {
		t.Fatalf("status=%q want pending", got.Status)
	}
}
