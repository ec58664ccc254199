package nhl

import (
	"testing"
)

func TestMapGameState(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"FUT", GameStateScheduled},
		{"PRE", GameStateScheduled},
		{"LIVE", GameStateInProgress},
		{"CRIT", GameStateInProgress},
		{"FINAL", GameStateFinished},
		{"OFF", GameStateFinished},
		{"PPD", GameStatePostponed},
		{"", GameStateScheduled},
	}
	for _, tt := range tests {
		if got := mapGameState(tt.in); got != tt.want {
			t.Fatalf("mapGameState(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseSchedule(t *testing.T) {
	body := []byte(`{
		"gameWeek": [
			{
				"games": [
					{
						"id": 2025020412,
						"startTimeUTC": "2026-03-01T00:00:00Z",
						"gameState": "FUT",
						"homeTeam": {"abbrev": "BOS"},
						"awayTeam": {"abbrev": "TOR"}
					},
					{
						"id": 2025020413,
						"startTimeUTC": "2026-03-01T02:30:00Z",
						"gameState": "FINAL",
						"homeTeam": {"abbrev": "COL", "score": 4},
						"awayTeam": {"abbrev": "DAL", "score": 2}
					}
				]
			}
		]
	}`)
	games, err := parseSchedule(body)
	if err != nil {
		t.Fatalf("parseSchedule: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}
	if games[0].ExternalID != "2025020412" || games[0].State != GameStateScheduled {
		t.Fatalf("unexpected first game %+v", games[0])
	}
	if games[0].HomeScore != nil {
		t.Fatalf("scheduled game should have no score")
	}
	if games[1].State != GameStateFinished {
		t.Fatalf("expected finished, got %s", games[1].State)
	}
	if games[1].HomeScore == nil || *games[1].HomeScore != 4 {
		t.Fatalf("unexpected home score %#v", games[1].HomeScore)
	}
}

func TestParseRoster(t *testing.T) {
	body := []byte(`{
		"forwards": [
			{"firstName": {"default": "David"}, "lastName": {"default": "Pastrnak"}, "positionCode": "R", "sweaterNumber": 88}
		],
		"defensemen": [
			{"firstName": {"default": "Charlie"}, "lastName": {"default": "McAvoy"}, "positionCode": "D", "sweaterNumber": 73}
		],
		"goalies": [
			{"firstName": {"default": "Jeremy"}, "lastName": {"default": "Swayman"}, "positionCode": "G", "sweaterNumber": 1}
		]
	}`)
	players, err := parseRoster(body)
	if err != nil {
		t.Fatalf("parseRoster: %v", err)
	}
	if len(players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(players))
	}
	if players[0].Name != "David Pastrnak" || players[0].Position != "RW" {
		t.Fatalf("unexpected forward %+v", players[0])
	}
	if players[1].Position != "D" || players[2].Position != "G" {
		t.Fatalf("positions not mapped: %+v", players)
	}
	if players[0].JerseyNumber == nil || *players[0].JerseyNumber != 88 {
		t.Fatalf("jersey number missing")
	}
}

func TestParseBoxscore(t *testing.T) {
	body := []byte(`{
		"homeTeam": {"abbrev": "BOS"},
		"awayTeam": {"abbrev": "TOR"},
		"playerByGameStats": {
			"homeTeam": {
				"forwards": [
					{"name": {"default": "David Pastrnak"}, "position": "R", "goals": 2, "assists": 1, "sog": 6}
				],
				"defense": [
					{"name": {"default": "Charlie McAvoy"}, "position": "D", "goals": 0, "assists": 2, "sog": 3}
				]
			},
			"awayTeam": {
				"forwards": [
					{"name": {"default": "Auston Matthews"}, "position": "C", "goals": 1, "assists": 0, "sog": 8}
				],
				"defense": []
			}
		}
	}`)
	lines, err := parseBoxscore(body)
	if err != nil {
		t.Fatalf("parseBoxscore: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("expected 3 skater lines, got %d", len(lines))
	}
	if lines[0].Name != "David Pastrnak" || lines[0].TeamAbbrev != "BOS" || lines[0].Goals != 2 {
		t.Fatalf("unexpected first line %+v", lines[0])
	}
	if lines[2].Name != "Auston Matthews" || lines[2].TeamAbbrev != "TOR" || lines[2].ShotsOnGoal != 8 {
		t.Fatalf("unexpected away line %+v", lines[2])
	}
}
