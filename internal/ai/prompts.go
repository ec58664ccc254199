package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Brief types are the JSON views embedded into prompts. They carry only what
// the model needs, never raw DB rows.

type TeamBrief struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type GameBrief struct {
	ID       uint64    `json:"id"`
	HomeTeam TeamBrief `json:"home_team"`
	AwayTeam TeamBrief `json:"away_team"`
	GameTime string    `json:"game_time"`
	Status   string    `json:"status"`
}

type OddsBrief struct {
	Sportsbook     string   `json:"sportsbook"`
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

type PropBrief struct {
	Sportsbook string  `json:"sportsbook"`
	PlayerID   uint64  `json:"player_id,omitempty"`
	PlayerName string  `json:"player_name"`
	Team       string  `json:"team"`
	Position   string  `json:"position"`
	PropType   string  `json:"prop_type"`
	Line       float64 `json:"line"`
	OverOdds   float64 `json:"over_odds"`
	UnderOdds  float64 `json:"under_odds"`
}

type PlayerBrief struct {
	Name          string  `json:"name"`
	Position      string  `json:"position"`
	IsInjured     bool    `json:"is_injured"`
	InjuryDetails *string `json:"injury_details"`
}

type ArticleBrief struct {
	Title         string  `json:"title"`
	Source        string  `json:"source"`
	PublishedDate string  `json:"published_date"`
	Summary       *string `json:"summary"`
	Content       string  `json:"content"`
}

type TeamDetailBrief struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Division     string `json:"division"`
	Conference   string `json:"conference"`
}

type PastGameBrief struct {
	ID        uint64 `json:"id"`
	Opponent  string `json:"opponent"`
	GameTime  string `json:"game_time"`
	Status    string `json:"status"`
	HomeScore *int   `json:"home_score"`
	AwayScore *int   `json:"away_score"`
}

type UpcomingGameBrief struct {
	ID       uint64 `json:"id"`
	Opponent string `json:"opponent"`
	IsHome   bool   `json:"is_home"`
	GameTime string `json:"game_time"`
}

type ParlayGameBrief struct {
	ID          uint64      `json:"id"`
	HomeTeam    TeamBrief   `json:"home_team"`
	AwayTeam    TeamBrief   `json:"away_team"`
	GameTime    string      `json:"game_time"`
	Odds        []OddsBrief `json:"odds"`
	PlayerProps []PropBrief `json:"player_props"`
}

type ParlayBrief struct {
	ID              uint64  `json:"id"`
	Name            string  `json:"name"`
	Stake           string  `json:"stake"`
	TotalOdds       float64 `json:"total_odds"`
	PotentialPayout string  `json:"potential_payout"`
	Status          string  `json:"status"`
}

type BetBrief struct {
	ID            uint64     `json:"id"`
	BetType       string     `json:"bet_type"`
	Selection     string     `json:"selection"`
	Odds          float64    `json:"odds"`
	Justification string     `json:"justification"`
	Status        string     `json:"status"`
	Game          *GameBrief `json:"game,omitempty"`
}

func mustJSON(v any) string {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(out)
}

func BuildGameAnalysisPrompt(
	game GameBrief,
	odds []OddsBrief,
	props []PropBrief,
	homePlayers, awayPlayers []PlayerBrief,
	homeNews, awayNews []ArticleBrief,
) string {
	var b strings.Builder
	b.WriteString("You are an expert NHL analyst and sports betting advisor. Please analyze the following NHL game and provide insights for betting purposes.\n\n")
	fmt.Fprintf(&b, "GAME INFORMATION:\n%s\n\n", mustJSON(game))
	fmt.Fprintf(&b, "BETTING ODDS:\n%s\n\n", mustJSON(odds))
	fmt.Fprintf(&b, "PLAYER PROPS:\n%s\n\n", mustJSON(props))
	fmt.Fprintf(&b, "HOME TEAM PLAYERS:\n%s\n\n", mustJSON(homePlayers))
	fmt.Fprintf(&b, "AWAY TEAM PLAYERS:\n%s\n\n", mustJSON(awayPlayers))
	fmt.Fprintf(&b, "RECENT NEWS ABOUT HOME TEAM:\n%s\n\n", mustJSON(homeNews))
	fmt.Fprintf(&b, "RECENT NEWS ABOUT AWAY TEAM:\n%s\n\n", mustJSON(awayNews))
	b.WriteString(`Please provide a comprehensive analysis of this game, including:
1. Team comparison and recent performance
2. Key player matchups and injury impacts
3. Betting recommendations (moneyline, spread, over/under)
4. Player prop betting recommendations
5. Confidence level for each recommendation (on a scale of 0.0 to 1.0)
6. Justification for each recommendation

Format your response as a detailed analysis that would be helpful for someone making betting decisions. Include a confidence score between 0.0 and 1.0 for your overall analysis.
`)
	return b.String()
}

func BuildTeamAnalysisPrompt(
	team TeamDetailBrief,
	players []PlayerBrief,
	recentHome, recentAway []PastGameBrief,
	upcoming []UpcomingGameBrief,
	news []ArticleBrief,
) string {
	var b strings.Builder
	b.WriteString("You are an expert NHL analyst and sports betting advisor. Please analyze the following NHL team and provide insights for betting purposes.\n\n")
	fmt.Fprintf(&b, "TEAM INFORMATION:\n%s\n\n", mustJSON(team))
	fmt.Fprintf(&b, "PLAYERS:\n%s\n\n", mustJSON(players))
	fmt.Fprintf(&b, "RECENT HOME GAMES:\n%s\n\n", mustJSON(recentHome))
	fmt.Fprintf(&b, "RECENT AWAY GAMES:\n%s\n\n", mustJSON(recentAway))
	fmt.Fprintf(&b, "UPCOMING GAMES:\n%s\n\n", mustJSON(upcoming))
	fmt.Fprintf(&b, "RECENT NEWS:\n%s\n\n", mustJSON(news))
	b.WriteString(`Please provide a comprehensive analysis of this team, including:
1. Recent performance and trends
2. Key players and their impact
3. Injury situation and implications
4. Outlook for upcoming games
5. Betting recommendations for upcoming games
6. Confidence level for each recommendation (on a scale of 0.0 to 1.0)

Format your response as a detailed analysis that would be helpful for someone making betting decisions. Include a confidence score between 0.0 and 1.0 for your overall analysis.
`)
	return b.String()
}

func formatOptional[T any](v *T) string {
	if v == nil {
		return "Not specified"
	}
	return fmt.Sprintf("%v", *v)
}

func BuildParlayOptimizationPrompt(
	games []ParlayGameBrief,
	stake string,
	minOdds *float64,
	maxLegs *int,
	minConfidence *float64,
) string {
	var b strings.Builder
	b.WriteString("You are an expert NHL analyst and sports betting advisor. Please create an optimized parlay based on the following NHL games.\n\n")
	fmt.Fprintf(&b, "GAMES:\n%s\n\n", mustJSON(games))
	b.WriteString("PARAMETERS:\n")
	fmt.Fprintf(&b, "- Stake: $%s\n", stake)
	fmt.Fprintf(&b, "- Minimum Total Odds: %s\n", formatOptional(minOdds))
	fmt.Fprintf(&b, "- Maximum Legs: %s\n", formatOptional(maxLegs))
	fmt.Fprintf(&b, "- Minimum Confidence: %s\n\n", formatOptional(minConfidence))
	b.WriteString(`Please create an optimized parlay that maximizes potential return while considering confidence scores. For each leg of the parlay, select the best bet type (moneyline, spread, over/under) and the best odds available from the different sportsbooks.

Your response should be in JSON format with the following structure:
{
  "name": "Name of the parlay",
  "total_odds": 0.0,
  "bets": [
    {
      "game_id": 0,
      "bet_type": "moneyline|spread|over_under|player_prop",
      "selection": "home|away|over|under",
      "player_id": 0,
      "prop_type": "points|goals|assists|shots_on_goal",
      "odds": 0.0,
      "justification": "Justification for this bet"
    }
  ]
}

The player_id and prop_type fields apply only to player_prop bets.

Also include a confidence score between 0.0 and 1.0 for the overall parlay.
`)
	return b.String()
}

func BuildParlayEvaluationPrompt(parlay ParlayBrief, bets []BetBrief) string {
	var b strings.Builder
	b.WriteString("You are an expert NHL analyst and sports betting advisor. Please evaluate the following NHL parlay and provide insights.\n\n")
	fmt.Fprintf(&b, "PARLAY:\n%s\n\n", mustJSON(parlay))
	fmt.Fprintf(&b, "BETS:\n%s\n\n", mustJSON(bets))
	b.WriteString(`Please provide a comprehensive evaluation of this parlay, including:
1. Analysis of each leg of the parlay
2. Strengths and weaknesses of the parlay
3. Suggestions for improvement
4. Overall assessment of the parlay's value
5. Confidence level for the parlay (on a scale of 0.0 to 1.0)

Format your response as a detailed analysis that would be helpful for someone making betting decisions. Include a confidence score between 0.0 and 1.0 for your overall evaluation.
`)
	return b.String()
}
