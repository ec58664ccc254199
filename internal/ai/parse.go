package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const DefaultConfidence = 0.7

var (
	confidenceRe = regexp.MustCompile(`(?i)confidence score[:\s]+([0-9.]+)`)
	jsonBlockRe  = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
)

// ExtractConfidence pulls the overall confidence score out of an analysis.
// Unparseable or missing scores fall back to DefaultConfidence; parsed
// values are clamped to [0, 1].
func ExtractConfidence(content string) float64 {
	match := confidenceRe.FindStringSubmatch(content)
	if match == nil {
		return DefaultConfidence
	}
	score, err := strconv.ParseFloat(strings.TrimRight(match[1], "."), 64)
	if err != nil {
		return DefaultConfidence
	}
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// ParlayPlan is the structured parlay the model is asked to produce.
type ParlayPlan struct {
	Name      string    `json:"name"`
	TotalOdds float64   `json:"total_odds"`
	Bets      []PlanBet `json:"bets"`
}

type PlanBet struct {
	GameID        uint64  `json:"game_id"`
	BetType       string  `json:"bet_type"`
	Selection     string  `json:"selection"`
	PlayerID      *uint64 `json:"player_id,omitempty"`
	PropType      *string `json:"prop_type,omitempty"`
	Odds          float64 `json:"odds"`
	Justification string  `json:"justification"`
}

// ExtractParlayPlan finds the JSON plan in a completion, preferring a fenced
// ```json block and falling back to the outermost brace pair.
func ExtractParlayPlan(content string) (*ParlayPlan, error) {
	raw := ""
	if match := jsonBlockRe.FindStringSubmatch(content); match != nil {
		raw = match[1]
	} else {
		start := strings.Index(content, "{")
		end := strings.LastIndex(content, "}")
		if start < 0 || end <= start {
			return nil, fmt.Errorf("no JSON object in completion")
		}
		raw = content[start : end+1]
	}
	var plan ParlayPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, fmt.Errorf("invalid parlay plan: %w", err)
	}
	if len(plan.Bets) == 0 {
		return nil, fmt.Errorf("parlay plan has no bets")
	}
	return &plan, nil
}
