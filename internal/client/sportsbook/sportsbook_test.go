package sportsbook

import (
	"context"
	"testing"
)

func TestParseGameOdds(t *testing.T) {
	body := []byte(`{
		"home_moneyline": -140,
		"away_moneyline": 120,
		"home_spread": -1.5,
		"away_spread": 1.5,
		"home_spread_odds": -115,
		"away_spread_odds": -110,
		"over_under": 6.5,
		"over_odds": -110,
		"under_odds": -120
	}`)
	odds, err := parseGameOdds(body)
	if err != nil {
		t.Fatalf("parseGameOdds: %v", err)
	}
	if odds.HomeMoneyline == nil || *odds.HomeMoneyline != -140 {
		t.Fatalf("home moneyline = %#v, want -140", odds.HomeMoneyline)
	}
	if odds.Total == nil || *odds.Total != 6.5 {
		t.Fatalf("total = %#v, want 6.5", odds.Total)
	}
	if odds.AwaySpread == nil || *odds.AwaySpread != 1.5 {
		t.Fatalf("away spread = %#v, want 1.5", odds.AwaySpread)
	}
}

func TestParseGameOddsPartialMarkets(t *testing.T) {
	odds, err := parseGameOdds([]byte(`{"home_moneyline": -130, "away_moneyline": 110}`))
	if err != nil {
		t.Fatalf("parseGameOdds: %v", err)
	}
	if odds.HomeSpread != nil || odds.Total != nil {
		t.Fatalf("expected missing markets to stay nil, got %#v", odds)
	}
}

func TestParsePlayerPropsResolvesRoster(t *testing.T) {
	body := []byte(`{"props": [
		{"player": "David Pastrnak", "prop_type": "goals", "line": 0.5, "over_odds": 140, "under_odds": -170},
		{"player": "Unknown Skater", "prop_type": "points", "line": 1.5, "over_odds": -120, "under_odds": -110},
		{"player": "charlie mcavoy", "prop_type": "", "line": 0.5, "over_odds": 120, "under_odds": -140}
	]}`)
	roster := []PlayerRef{
		{ID: 7, Name: "David Pastrnak", Position: "RW"},
		{ID: 12, Name: "Charlie McAvoy", Position: "D"},
	}
	props, err := parsePlayerProps(body, roster)
	if err != nil {
		t.Fatalf("parsePlayerProps: %v", err)
	}
	if len(props) != 1 {
		t.Fatalf("expected 1 resolved prop, got %d", len(props))
	}
	if props[0].PlayerID != 7 || props[0].PropType != "goals" {
		t.Fatalf("unexpected prop %+v", props[0])
	}
}

func TestSimulatedDeterministic(t *testing.T) {
	sim := NewSimulated(BookDraftKings)
	ctx := context.Background()

	first, err := sim.GameOdds(ctx, "NHL202603011")
	if err != nil {
		t.Fatalf("GameOdds: %v", err)
	}
	second, err := sim.GameOdds(ctx, "NHL202603011")
	if err != nil {
		t.Fatalf("GameOdds: %v", err)
	}
	if (first == nil) != (second == nil) {
		t.Fatalf("availability changed between calls")
	}
	if first != nil && *first.HomeMoneyline != *second.HomeMoneyline {
		t.Fatalf("home moneyline drifted: %v vs %v", *first.HomeMoneyline, *second.HomeMoneyline)
	}
}

func TestSimulatedPropsSkipGoalies(t *testing.T) {
	sim := NewSimulated(BookFanDuel)
	roster := []PlayerRef{
		{ID: 1, Name: "Jeremy Swayman", Position: "G"},
	}
	props, err := sim.PlayerProps(context.Background(), "NHL202603011", roster)
	if err != nil {
		t.Fatalf("PlayerProps: %v", err)
	}
	if len(props) != 0 {
		t.Fatalf("expected no props for goalie, got %d", len(props))
	}
}

func TestSimulatedPropTypes(t *testing.T) {
	sim := NewSimulated(BookDraftKings)
	roster := []PlayerRef{
		{ID: 1, Name: "Brad Marchand", Position: "LW"},
		{ID: 2, Name: "Cale Makar", Position: "D"},
		{ID: 3, Name: "Nathan MacKinnon", Position: "C"},
		{ID: 4, Name: "Mikko Rantanen", Position: "RW"},
	}
	props, err := sim.PlayerProps(context.Background(), "NHL202603012", roster)
	if err != nil {
		t.Fatalf("PlayerProps: %v", err)
	}
	seen := map[string]bool{}
	for _, prop := range props {
		seen[prop.PropType] = true
		if prop.Line <= 0 {
			t.Fatalf("non-positive line for %+v", prop)
		}
	}
	for _, want := range []string{"points", "goals", "assists", "shots_on_goal"} {
		if len(props) > 0 && !seen[want] {
			// Each quoted skater carries all four markets, so any quote set
			// that is non-empty must include every type.
			t.Fatalf("missing prop type %s in %v", want, seen)
		}
	}
}
