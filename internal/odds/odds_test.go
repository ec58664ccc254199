package odds

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmericanToDecimal(t *testing.T) {
	cases := []struct {
		price float64
		want  float64
	}{
		{+150, 2.5},
		{+100, 2.0},
		{-100, 2.0},
		{-110, 1.0 + 100.0/110.0},
		{-200, 1.5},
	}
	for _, tc := range cases {
		got, err := AmericanToDecimal(tc.price)
		if err != nil {
			t.Fatalf("price %v: err=%v", tc.price, err)
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("price %v: got %v want %v", tc.price, got, tc.want)
		}
	}
}

func TestAmericanToDecimal_Invalid(t *testing.T) {
	for _, price := range []float64{0, 50, -50, 99, -99} {
		if _, err := AmericanToDecimal(price); err == nil {
			t.Fatalf("price %v: expected error", price)
		}
	}
}

func TestDecimalToAmerican_RoundTrip(t *testing.T) {
	for _, price := range []float64{-230, -110, -100, 100, 120, 450} {
		dec, err := AmericanToDecimal(price)
		if err != nil {
			t.Fatalf("to decimal %v: %v", price, err)
		}
		back, err := DecimalToAmerican(dec)
		if err != nil {
			t.Fatalf("to american %v: %v", dec, err)
		}
		if math.Abs(back-price) > 1e-6 {
			t.Fatalf("round trip %v: got %v", price, back)
		}
	}
}

func TestImpliedProbability(t *testing.T) {
	got, err := ImpliedProbability(-110)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	want := 110.0 / 210.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestParlayOdds(t *testing.T) {
	// -110 / -110 two-leg parlay pays about 3.64.
	total, err := ParlayOdds([]float64{-110, -110})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	want := (21.0 / 11.0) * (21.0 / 11.0)
	if math.Abs(total-want) > 1e-9 {
		t.Fatalf("got %v want %v", total, want)
	}

	if _, err := ParlayOdds(nil); err == nil {
		t.Fatalf("expected error for empty parlay")
	}
}

func TestPayout(t *testing.T) {
	stake := decimal.NewFromInt(100)
	got := Payout(stake, 2.5)
	if !got.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("got %s want 250", got)
	}
}

func TestBetterSpread(t *testing.T) {
	// +2.5 beats +1.5 regardless of price.
	if !BetterSpread(2.5, -130, 1.5, 110) {
		t.Fatalf("higher line should win")
	}
	// Same line, better price wins.
	if !BetterSpread(1.5, -105, 1.5, -115) {
		t.Fatalf("better price should win on equal lines")
	}
}

func TestBetterTotal(t *testing.T) {
	// Overs want the lower total.
	if !BetterTotal(true, 5.5, -115, 6.0, -105) {
		t.Fatalf("lower total should win for over")
	}
	// Unders want the higher total.
	if !BetterTotal(false, 6.5, -115, 6.0, -105) {
		t.Fatalf("higher total should win for under")
	}
	if !BetterTotal(true, 6.0, -105, 6.0, -115) {
		t.Fatalf("better price should win on equal totals")
	}
}

func TestGradeMoneyline(t *testing.T) {
	if out := GradeMoneyline(true, 4, 2); out != OutcomeWon {
		t.Fatalf("home win: got %v", out)
	}
	if out := GradeMoneyline(false, 4, 2); out != OutcomeLost {
		t.Fatalf("away on home win: got %v", out)
	}
	if out := GradeMoneyline(true, 3, 3); out != OutcomePush {
		t.Fatalf("tie: got %v", out)
	}
}

func TestGradeSpread(t *testing.T) {
	// Home -1.5, wins by 2: covers.
	if out := GradeSpread(true, -1.5, 4, 2); out != OutcomeWon {
		t.Fatalf("home cover: got %v", out)
	}
	// Home -1.5, wins by 1: loses.
	if out := GradeSpread(true, -1.5, 3, 2); out != OutcomeLost {
		t.Fatalf("home no cover: got %v", out)
	}
	// Away +1.5, loses by 1: covers.
	if out := GradeSpread(false, 1.5, 3, 2); out != OutcomeWon {
		t.Fatalf("away cover: got %v", out)
	}
	// Whole-number line landing exactly pushes.
	if out := GradeSpread(true, -2, 4, 2); out != OutcomePush {
		t.Fatalf("exact spread: got %v", out)
	}
}

func TestGradeTotal(t *testing.T) {
	if out := GradeTotal(true, 5.5, 4, 2); out != OutcomeWon {
		t.Fatalf("over hits: got %v", out)
	}
	if out := GradeTotal(false, 5.5, 4, 2); out != OutcomeLost {
		t.Fatalf("under misses: got %v", out)
	}
	if out := GradeTotal(true, 6, 4, 2); out != OutcomePush {
		t.Fatalf("exact total: got %v", out)
	}
}

func TestGradeProp(t *testing.T) {
	if out := GradeProp(true, 0.5, 1); out != OutcomeWon {
		t.Fatalf("over 0.5 with 1: got %v", out)
	}
	if out := GradeProp(true, 2.5, 1); out != OutcomeLost {
		t.Fatalf("over 2.5 with 1: got %v", out)
	}
	if out := GradeProp(false, 2, 2); out != OutcomePush {
		t.Fatalf("exact line: got %v", out)
	}
}
