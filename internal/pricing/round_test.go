package pricing

import "testing"

func TestRound(t *testing.T) {
	tests := []struct {
		v      float64
		places int32
		want   float64
	}{
		{2.564102564, 4, 2.5641},
		{1.005, 2, 1.01},
		{-1.005, 2, -1.01},
		{0.80769230769, 4, 0.8077},
		{5.99999999, 2, 6},
	}
	for _, tt := range tests {
		if got := Round(tt.v, tt.places); got != tt.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.v, tt.places, got, tt.want)
		}
	}
}

func TestResultRounded(t *testing.T) {
	res := Result{
		Yield:           6.557812,
		AccruedInterest: 0.807692,
		DirtyPrice:      99.807692,
		YearsToMaturity: 2.3698,
		Market:          &MarketComparison{MarketRate: 6.12345, Spread: 0.434362},
	}

	out := res.Rounded()
	if out.Yield != 6.5578 || out.AccruedInterest != 0.8077 || out.DirtyPrice != 99.8077 || out.YearsToMaturity != 2.37 {
		t.Errorf("unexpected rounding: %+v", out)
	}
	if out.Market.Spread != 0.43 || out.Market.MarketRate != 6.12 {
		t.Errorf("unexpected market rounding: %+v", out.Market)
	}
	if res.Market.Spread != 0.434362 {
		t.Error("Rounded must not mutate the receiver")
	}
}
