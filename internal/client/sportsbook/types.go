package sportsbook

import (
	"encoding/json"
	"fmt"
	"strings"
)

type gameOddsPayload struct {
	HomeMoneyline  *float64 `json:"home_moneyline"`
	AwayMoneyline  *float64 `json:"away_moneyline"`
	HomeSpread     *float64 `json:"home_spread"`
	AwaySpread     *float64 `json:"away_spread"`
	HomeSpreadOdds *float64 `json:"home_spread_odds"`
	AwaySpreadOdds *float64 `json:"away_spread_odds"`
	OverUnder      *float64 `json:"over_under"`
	OverOdds       *float64 `json:"over_odds"`
	UnderOdds      *float64 `json:"under_odds"`
}

func parseGameOdds(body []byte) (*GameOdds, error) {
	var payload gameOddsPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("invalid odds payload: %w", err)
	}
	return &GameOdds{
		HomeMoneyline:  payload.HomeMoneyline,
		AwayMoneyline:  payload.AwayMoneyline,
		HomeSpread:     payload.HomeSpread,
		AwaySpread:     payload.AwaySpread,
		HomeSpreadOdds: payload.HomeSpreadOdds,
		AwaySpreadOdds: payload.AwaySpreadOdds,
		Total:          payload.OverUnder,
		OverOdds:       payload.OverOdds,
		UnderOdds:      payload.UnderOdds,
	}, nil
}

type propPayload struct {
	Player    string  `json:"player"`
	PropType  string  `json:"prop_type"`
	Line      float64 `json:"line"`
	OverOdds  float64 `json:"over_odds"`
	UnderOdds float64 `json:"under_odds"`
}

// parsePlayerProps resolves quoted player names against the roster the
// caller passed in. Quotes for unknown players are dropped.
func parsePlayerProps(body []byte, players []PlayerRef) ([]PropQuote, error) {
	var payload struct {
		Props []propPayload `json:"props"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("invalid props payload: %w", err)
	}
	byName := make(map[string]uint64, len(players))
	for _, p := range players {
		byName[strings.ToLower(strings.TrimSpace(p.Name))] = p.ID
	}
	out := make([]PropQuote, 0, len(payload.Props))
	for _, prop := range payload.Props {
		playerID, ok := byName[strings.ToLower(strings.TrimSpace(prop.Player))]
		if !ok {
			continue
		}
		propType := strings.ToLower(strings.TrimSpace(prop.PropType))
		if propType == "" {
			continue
		}
		out = append(out, PropQuote{
			PlayerID:  playerID,
			PropType:  propType,
			Line:      prop.Line,
			OverOdds:  prop.OverOdds,
			UnderOdds: prop.UnderOdds,
		})
	}
	return out, nil
}
