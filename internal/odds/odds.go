// Package odds holds the betting arithmetic shared by the sync services,
// the parlay builder and the settlement loop. Prices are American odds
// throughout; parlay totals are computed in decimal (European) form.
package odds

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Outcome is the graded result of a single selection.
type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
	OutcomePush Outcome = "push"
)

// AmericanToDecimal converts an American price to decimal odds.
// -110 -> 1.909..., +150 -> 2.5.
func AmericanToDecimal(price float64) (float64, error) {
	switch {
	case price >= 100:
		return 1 + price/100, nil
	case price <= -100:
		return 1 + 100/math.Abs(price), nil
	default:
		return 0, fmt.Errorf("invalid american price: %v", price)
	}
}

// DecimalToAmerican is the inverse of AmericanToDecimal.
func DecimalToAmerican(dec float64) (float64, error) {
	if dec <= 1 {
		return 0, fmt.Errorf("invalid decimal odds: %v", dec)
	}
	if dec >= 2 {
		return (dec - 1) * 100, nil
	}
	return -100 / (dec - 1), nil
}

// ImpliedProbability is the break-even win probability of an American price,
// vig included.
func ImpliedProbability(price float64) (float64, error) {
	dec, err := AmericanToDecimal(price)
	if err != nil {
		return 0, err
	}
	return 1 / dec, nil
}

// ParlayOdds multiplies the legs' decimal odds.
func ParlayOdds(prices []float64) (float64, error) {
	if len(prices) == 0 {
		return 0, fmt.Errorf("parlay needs at least one leg")
	}
	total := 1.0
	for _, p := range prices {
		dec, err := AmericanToDecimal(p)
		if err != nil {
			return 0, err
		}
		total *= dec
	}
	return total, nil
}

// Payout is stake times decimal odds, rounded to cents.
func Payout(stake decimal.Decimal, totalOdds float64) decimal.Decimal {
	return stake.Mul(decimal.NewFromFloat(totalOdds)).Round(2)
}

// BetterPrice reports whether a is a better price than b for the bettor.
// Higher American odds always pay more on the same market.
func BetterPrice(a, b float64) bool {
	return a > b
}

// BetterSpread compares two puck-line offers on the same side. A higher
// line gives the bettor more goals, so the line wins before the price.
func BetterSpread(lineA, priceA, lineB, priceB float64) bool {
	if lineA != lineB {
		return lineA > lineB
	}
	return BetterPrice(priceA, priceB)
}

// BetterTotal compares two total offers on the same side. Overs want the
// lower total, unders the higher one; the price breaks ties.
func BetterTotal(isOver bool, totalA, priceA, totalB, priceB float64) bool {
	if totalA != totalB {
		if isOver {
			return totalA < totalB
		}
		return totalA > totalB
	}
	return BetterPrice(priceA, priceB)
}

// GradeMoneyline grades a home/away winner selection. isHome reflects the
// selection side. NHL games cannot end tied, but the push branch keeps the
// grader total for data errors.
func GradeMoneyline(isHome bool, homeScore, awayScore int) Outcome {
	if homeScore == awayScore {
		return OutcomePush
	}
	homeWon := homeScore > awayScore
	if homeWon == isHome {
		return OutcomeWon
	}
	return OutcomeLost
}

// GradeSpread grades a puck-line selection. spread is the line on the
// selected side (negative lays goals), applied to that side's score.
func GradeSpread(isHome bool, spread float64, homeScore, awayScore int) Outcome {
	var adjusted, opponent float64
	if isHome {
		adjusted = float64(homeScore) + spread
		opponent = float64(awayScore)
	} else {
		adjusted = float64(awayScore) + spread
		opponent = float64(homeScore)
	}
	switch {
	case adjusted > opponent:
		return OutcomeWon
	case adjusted < opponent:
		return OutcomeLost
	default:
		return OutcomePush
	}
}

// GradeTotal grades an over/under selection against the combined score.
func GradeTotal(isOver bool, total float64, homeScore, awayScore int) Outcome {
	combined := float64(homeScore + awayScore)
	if combined == total {
		return OutcomePush
	}
	over := combined > total
	if over == isOver {
		return OutcomeWon
	}
	return OutcomeLost
}

// GradeProp grades an over/under prop selection against the actual stat.
func GradeProp(isOver bool, line float64, actual int) Outcome {
	value := float64(actual)
	if value == line {
		return OutcomePush
	}
	over := value > line
	if over == isOver {
		return OutcomeWon
	}
	return OutcomeLost
}
