package nhl

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	GameStateScheduled  = "scheduled"
	GameStateInProgress = "in_progress"
	GameStateFinished   = "finished"
	GameStatePostponed  = "postponed"
)

type ScheduledGame struct {
	ExternalID string
	HomeAbbrev string
	AwayAbbrev string
	StartTime  time.Time
	State      string
	HomeScore  *int
	AwayScore  *int
}

type SkaterLine struct {
	Name        string
	TeamAbbrev  string
	Position    string
	Goals       int
	Assists     int
	ShotsOnGoal int
}

type scheduleTeam struct {
	Abbrev string `json:"abbrev"`
	Score  *int   `json:"score"`
}

type scheduleGame struct {
	ID           int64        `json:"id"`
	StartTimeUTC time.Time    `json:"startTimeUTC"`
	GameState    string       `json:"gameState"`
	HomeTeam     scheduleTeam `json:"homeTeam"`
	AwayTeam     scheduleTeam `json:"awayTeam"`
}

type schedulePayload struct {
	GameWeek []struct {
		Games []scheduleGame `json:"games"`
	} `json:"gameWeek"`
}

// mapGameState folds the feed's states down to the four we track.
func mapGameState(state string) string {
	switch strings.ToUpper(strings.TrimSpace(state)) {
	case "LIVE", "CRIT":
		return GameStateInProgress
	case "FINAL", "OFF":
		return GameStateFinished
	case "PPD", "SUSP", "CNCL":
		return GameStatePostponed
	default:
		return GameStateScheduled
	}
}

func parseSchedule(body []byte) ([]ScheduledGame, error) {
	var payload schedulePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("invalid schedule payload: %w", err)
	}
	var games []ScheduledGame
	for _, day := range payload.GameWeek {
		for _, game := range day.Games {
			if game.ID == 0 {
				continue
			}
			games = append(games, ScheduledGame{
				ExternalID: strconv.FormatInt(game.ID, 10),
				HomeAbbrev: game.HomeTeam.Abbrev,
				AwayAbbrev: game.AwayTeam.Abbrev,
				StartTime:  game.StartTimeUTC,
				State:      mapGameState(game.GameState),
				HomeScore:  game.HomeTeam.Score,
				AwayScore:  game.AwayTeam.Score,
			})
		}
	}
	return games, nil
}

type RosterPlayer struct {
	Name         string
	Position     string
	JerseyNumber *int
}

type rosterEntry struct {
	FirstName struct {
		Default string `json:"default"`
	} `json:"firstName"`
	LastName struct {
		Default string `json:"default"`
	} `json:"lastName"`
	PositionCode  string `json:"positionCode"`
	SweaterNumber *int   `json:"sweaterNumber"`
}

type rosterPayload struct {
	Forwards   []rosterEntry `json:"forwards"`
	Defensemen []rosterEntry `json:"defensemen"`
	Goalies    []rosterEntry `json:"goalies"`
}

// rosterPosition expands the single-letter feed codes; wings keep their side.
func rosterPosition(code string) string {
	switch code {
	case "L":
		return "LW"
	case "R":
		return "RW"
	default:
		return code
	}
}

func parseRoster(body []byte) ([]RosterPlayer, error) {
	var payload rosterPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("invalid roster payload: %w", err)
	}
	var players []RosterPlayer
	for _, group := range [][]rosterEntry{payload.Forwards, payload.Defensemen, payload.Goalies} {
		for _, entry := range group {
			name := strings.TrimSpace(entry.FirstName.Default + " " + entry.LastName.Default)
			if name == "" {
				continue
			}
			players = append(players, RosterPlayer{
				Name:         name,
				Position:     rosterPosition(entry.PositionCode),
				JerseyNumber: entry.SweaterNumber,
			})
		}
	}
	return players, nil
}

type boxscoreSkater struct {
	Name struct {
		Default string `json:"default"`
	} `json:"name"`
	Position string `json:"position"`
	Goals    int    `json:"goals"`
	Assists  int    `json:"assists"`
	SOG      int    `json:"sog"`
}

type boxscoreTeam struct {
	Forwards []boxscoreSkater `json:"forwards"`
	Defense  []boxscoreSkater `json:"defense"`
}

type boxscorePayload struct {
	HomeTeam struct {
		Abbrev string `json:"abbrev"`
	} `json:"homeTeam"`
	AwayTeam struct {
		Abbrev string `json:"abbrev"`
	} `json:"awayTeam"`
	PlayerByGameStats struct {
		HomeTeam boxscoreTeam `json:"homeTeam"`
		AwayTeam boxscoreTeam `json:"awayTeam"`
	} `json:"playerByGameStats"`
}

func parseBoxscore(body []byte) ([]SkaterLine, error) {
	var payload boxscorePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("invalid boxscore payload: %w", err)
	}
	appendTeam := func(lines []SkaterLine, team boxscoreTeam, abbrev string) []SkaterLine {
		for _, group := range [][]boxscoreSkater{team.Forwards, team.Defense} {
			for _, skater := range group {
				if skater.Name.Default == "" {
					continue
				}
				lines = append(lines, SkaterLine{
					Name:        skater.Name.Default,
					TeamAbbrev:  abbrev,
					Position:    skater.Position,
					Goals:       skater.Goals,
					Assists:     skater.Assists,
					ShotsOnGoal: skater.SOG,
				})
			}
		}
		return lines
	}
	var lines []SkaterLine
	lines = appendTeam(lines, payload.PlayerByGameStats.HomeTeam, payload.HomeTeam.Abbrev)
	lines = appendTeam(lines, payload.PlayerByGameStats.AwayTeam, payload.AwayTeam.Abbrev)
	return lines, nil
}
