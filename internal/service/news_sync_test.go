package service

import (
	"testing"

	"puckline/internal/models"
)

func entityFixtures() ([]models.Team, []models.Player) {
	teams := []models.Team{
		{ID: 1, Name: "Boston Bruins", Abbreviation: "BOS"},
		{ID: 2, Name: "Toronto Maple Leafs", Abbreviation: "TOR"},
		{ID: 3, Name: "Colorado Avalanche", Abbreviation: "COL"},
	}
	players := []models.Player{
		{ID: 10, Name: "David Pastrnak", TeamID: 1},
		{ID: 11, Name: "Auston Matthews", TeamID: 2},
	}
	return teams, players
}

func TestExtractEntitiesTeamName(t *testing.T) {
	teams, players := entityFixtures()
	gotTeams, gotPlayers := extractEntities(teams, players,
		"The Boston Bruins extended their winning streak to five games.")
	if len(gotTeams) != 1 || gotTeams[0].ID != 1 {
		t.Fatalf("teams=%v", gotTeams)
	}
	if len(gotPlayers) != 0 {
		t.Fatalf("players=%v", gotPlayers)
	}
}

func TestExtractEntitiesAbbreviation(t *testing.T) {
	teams, players := entityFixtures()
	gotTeams, _ := extractEntities(teams, players, "TOR wins 4-2 on the road.")
	if len(gotTeams) != 1 || gotTeams[0].ID != 2 {
		t.Fatalf("teams=%v", gotTeams)
	}
}

func TestExtractEntitiesAbbreviationNeedsWordBoundary(t *testing.T) {
	teams, players := entityFixtures()
	// "COL" must not match inside "collision".
	gotTeams, _ := extractEntities(teams, players, "A collision stopped play in the second period.")
	if len(gotTeams) != 0 {
		t.Fatalf("teams=%v", gotTeams)
	}
}

func TestExtractEntitiesPlayerTagsTeam(t *testing.T) {
	teams, players := entityFixtures()
	gotTeams, gotPlayers := extractEntities(teams, players,
		"Auston Matthews scored twice in the third period.")
	if len(gotPlayers) != 1 || gotPlayers[0].ID != 11 {
		t.Fatalf("players=%v", gotPlayers)
	}
	if len(gotTeams) != 1 || gotTeams[0].ID != 2 {
		t.Fatalf("players should tag their team, got teams=%v", gotTeams)
	}
}

func TestExtractEntitiesNoDuplicateTeams(t *testing.T) {
	teams, players := entityFixtures()
	gotTeams, _ := extractEntities(teams, players,
		"David Pastrnak led the Boston Bruins past BOS rivals.")
	if len(gotTeams) != 1 {
		t.Fatalf("teams=%v", gotTeams)
	}
}

func TestContainsWord(t *testing.T) {
	if !containsWord("BOS beat TOR", "TOR") {
		t.Fatalf("expected match at end")
	}
	if containsWord("history", "TOR") {
		t.Fatalf("case mismatch should not match")
	}
	if containsWord("collision", "COL") {
		t.Fatalf("substring inside word should not match")
	}
	if !containsWord("COL's power play", "COL") {
		t.Fatalf("punctuation boundary should match")
	}
}
