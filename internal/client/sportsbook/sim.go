package sportsbook

import (
	"context"
	"hash/fnv"
	"math"
	"math/rand"
)

// Simulated stands in for a book whose API key is not configured. Quotes are
// derived from a hash of the book and game id, so repeated refreshes return
// the same lines instead of drifting on every tick.
type Simulated struct {
	book string
}

func NewSimulated(book string) *Simulated {
	return &Simulated{book: book}
}

func (s *Simulated) Name() string {
	return s.book
}

func (s *Simulated) rng(gameExternalID string, salt string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(s.book))
	h.Write([]byte(gameExternalID))
	h.Write([]byte(salt))
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

func pick(r *rand.Rand, choices []float64) float64 {
	return choices[r.Intn(len(choices))]
}

func ptr(v float64) *float64 {
	return &v
}

func (s *Simulated) GameOdds(ctx context.Context, gameExternalID string) (*GameOdds, error) {
	r := s.rng(gameExternalID, "odds")
	if r.Float64() < 0.1 {
		return nil, nil
	}

	homeML := pick(r, []float64{-120, -130, -140, -150, -160, 110, 120, 130, 140, 150})
	var awayML float64
	if homeML > 0 {
		awayML = -homeML
	} else {
		awayML = math.Abs(homeML) + 10
	}

	spreadPrices := []float64{-110, -115, -120, -125, -130}
	total := pick(r, []float64{5.5, 6.0, 6.5})

	return &GameOdds{
		Sportsbook:     s.book,
		HomeMoneyline:  ptr(homeML),
		AwayMoneyline:  ptr(awayML),
		HomeSpread:     ptr(-1.5),
		AwaySpread:     ptr(1.5),
		HomeSpreadOdds: ptr(pick(r, spreadPrices)),
		AwaySpreadOdds: ptr(pick(r, spreadPrices)),
		Total:          ptr(total),
		OverOdds:       ptr(pick(r, spreadPrices)),
		UnderOdds:      ptr(pick(r, spreadPrices)),
	}, nil
}

func skaterPosition(position string) bool {
	switch position {
	case "C", "LW", "RW", "D":
		return true
	}
	return false
}

func (s *Simulated) PlayerProps(ctx context.Context, gameExternalID string, players []PlayerRef) ([]PropQuote, error) {
	juice := []float64{-110, -115, -120, -125, -130}
	wideJuice := []float64{-110, -115, -120, -125, -130, -135, -140}

	out := make([]PropQuote, 0, len(players)*4)
	for _, player := range players {
		if !skaterPosition(player.Position) {
			continue
		}
		r := s.rng(gameExternalID, player.Name)
		if r.Float64() < 0.2 {
			continue
		}

		pointsLine := math.Round((0.5+r.Float64()*2.0)*2) / 2
		out = append(out, PropQuote{
			PlayerID:  player.ID,
			PropType:  "points",
			Line:      pointsLine,
			OverOdds:  pick(r, wideJuice),
			UnderOdds: pick(r, wideJuice),
		})
		out = append(out, PropQuote{
			PlayerID:  player.ID,
			PropType:  "goals",
			Line:      0.5,
			OverOdds:  pick(r, []float64{120, 130, 140, 150, 160, 170, 180}),
			UnderOdds: pick(r, []float64{-140, -150, -160, -170, -180, -190, -200}),
		})
		out = append(out, PropQuote{
			PlayerID:  player.ID,
			PropType:  "assists",
			Line:      0.5,
			OverOdds:  pick(r, []float64{110, 120, 130, 140, 150, 160}),
			UnderOdds: pick(r, []float64{-130, -140, -150, -160, -170, -180}),
		})
		sogLine := math.Round((1.5+r.Float64()*2.0)*2) / 2
		out = append(out, PropQuote{
			PlayerID:  player.ID,
			PropType:  "shots_on_goal",
			Line:      sogLine,
			OverOdds:  pick(r, juice),
			UnderOdds: pick(r, juice),
		})
	}
	return out, nil
}
