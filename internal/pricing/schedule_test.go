package pricing

import (
	"math"
	"testing"
	"time"
)

func TestBuildSchedule(t *testing.T) {
	t.Run("annual_regular", func(t *testing.T) {
		s := BuildSchedule(date(2024, 1, 10), date(2029, 1, 10), date(2024, 7, 10), 1)
		if len(s.Periods) != 5 {
			t.Fatalf("expected 5 periods, got %d", len(s.Periods))
		}
		last := s.Periods[4]
		if !last.End.Equal(date(2029, 1, 10)) {
			t.Errorf("expected last period to end on maturity, got %s", last.End)
		}
		for i, p := range s.Periods {
			if p.Fraction() != 1 {
				t.Errorf("period %d: expected full coupon, got fraction %f", i, p.Fraction())
			}
		}
	})

	t.Run("semiannual_anchored_on_issue", func(t *testing.T) {
		s := BuildSchedule(date(2023, 8, 31), date(2025, 8, 31), date(2024, 1, 1), 2)
		want := []string{"2024-02-29", "2024-08-31", "2025-02-28", "2025-08-31"}
		if len(s.Periods) != len(want) {
			t.Fatalf("expected %d periods, got %d", len(want), len(s.Periods))
		}
		for i, p := range s.Periods {
			if got := p.End.Format("2006-01-02"); got != want[i] {
				t.Errorf("period %d: expected end %s, got %s", i, want[i], got)
			}
		}
	})

	t.Run("short_final_stub", func(t *testing.T) {
		s := BuildSchedule(date(2024, 1, 1), date(2026, 7, 1), date(2024, 1, 1), 1)
		if len(s.Periods) != 3 {
			t.Fatalf("expected 3 periods, got %d", len(s.Periods))
		}
		stub := s.Periods[2]
		if !stub.NotionalEnd.Equal(date(2027, 1, 1)) {
			t.Errorf("expected notional end 2027-01-01, got %s", stub.NotionalEnd)
		}
		want := 181.0 / 365.0
		if math.Abs(stub.Fraction()-want) > 1e-12 {
			t.Errorf("expected stub fraction %f, got %f", want, stub.Fraction())
		}
	})

	t.Run("rolled_back_without_issue_date", func(t *testing.T) {
		s := BuildSchedule(time.Time{}, date(2027, 3, 15), date(2025, 6, 1), 1)
		if len(s.Periods) != 2 {
			t.Fatalf("expected 2 periods, got %d", len(s.Periods))
		}
		if !s.Periods[0].Start.Equal(date(2025, 3, 15)) {
			t.Errorf("expected first accrual start 2025-03-15, got %s", s.Periods[0].Start)
		}
		if !s.Periods[1].End.Equal(date(2027, 3, 15)) {
			t.Errorf("expected last period to end on maturity, got %s", s.Periods[1].End)
		}
	})
}

func TestScheduleCurrent(t *testing.T) {
	s := BuildSchedule(date(2024, 1, 10), date(2029, 1, 10), date(2024, 7, 10), 1)

	t.Run("mid_period", func(t *testing.T) {
		p, ok := s.Current(date(2024, 7, 10))
		if !ok {
			t.Fatal("expected a current period")
		}
		if !p.Start.Equal(date(2024, 1, 10)) || !p.End.Equal(date(2025, 1, 10)) {
			t.Errorf("unexpected period %s..%s", p.Start, p.End)
		}
	})

	t.Run("on_coupon_date", func(t *testing.T) {
		p, ok := s.Current(date(2025, 1, 10))
		if !ok {
			t.Fatal("expected a current period")
		}
		if !p.Start.Equal(date(2025, 1, 10)) {
			t.Errorf("expected period starting on the coupon date, got %s", p.Start)
		}
		if got := p.Accrued(date(2025, 1, 10), 6); got != 0 {
			t.Errorf("expected no accrued interest on a coupon date, got %f", got)
		}
	})

	t.Run("after_maturity", func(t *testing.T) {
		if _, ok := s.Current(date(2029, 1, 10)); ok {
			t.Error("expected no current period at maturity")
		}
	})
}

func TestCouponPeriodAccrued(t *testing.T) {
	p := CouponPeriod{Start: date(2024, 1, 10), End: date(2025, 1, 10), NotionalEnd: date(2025, 1, 10)}

	t.Run("half_year", func(t *testing.T) {
		want := 6 * 182.0 / 366.0
		if got := p.Accrued(date(2024, 7, 10), 6); math.Abs(got-want) > 1e-12 {
			t.Errorf("expected %f, got %f", want, got)
		}
	})

	t.Run("before_start", func(t *testing.T) {
		if got := p.Accrued(date(2023, 12, 1), 6); got != 0 {
			t.Errorf("expected 0, got %f", got)
		}
	})
}

func TestScheduleCashflows(t *testing.T) {
	s := BuildSchedule(date(2024, 1, 10), date(2029, 1, 10), date(2024, 7, 10), 1)
	cfs := s.Cashflows(date(2024, 7, 10), 6)

	if len(cfs) != 5 {
		t.Fatalf("expected 5 cash flows, got %d", len(cfs))
	}
	if cfs[0].Amount != 6 {
		t.Errorf("expected first coupon 6, got %f", cfs[0].Amount)
	}
	if want := 184.0 / 365.0; math.Abs(cfs[0].Time-want) > 1e-12 {
		t.Errorf("expected first time %f, got %f", want, cfs[0].Time)
	}
	if cfs[4].Amount != 106 {
		t.Errorf("expected redemption flow 106, got %f", cfs[4].Amount)
	}
	for i := 1; i < len(cfs); i++ {
		if cfs[i].Time <= cfs[i-1].Time {
			t.Fatalf("cash flow times not increasing at %d", i)
		}
	}
}
