package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRound2(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"1.005", "1.01"},
		{"1.004", "1"},
		{"243.75", "243.75"},
		{"0.0015", "0"},
		{"248.076923", "248.08"},
	}
	for _, c := range cases {
		got := Round2(decimal.RequireFromString(c.input))
		if !got.Equal(decimal.RequireFromString(c.want)) {
			t.Errorf("Round2(%s) = %s, want %s", c.input, got, c.want)
		}
	}
}

func TestCentsRoundTrip(t *testing.T) {
	cases := []struct {
		input string
		cents int64
	}{
		{"2500", 250000},
		{"243.75", 24375},
		{"0.005", 1},
		{"0", 0},
	}
	for _, c := range cases {
		got := Cents(decimal.RequireFromString(c.input))
		if got != c.cents {
			t.Errorf("Cents(%s) = %d, want %d", c.input, got, c.cents)
		}
	}
	if !FromCents(24375).Equal(decimal.RequireFromString("243.75")) {
		t.Errorf("FromCents(24375) = %s, want 243.75", FromCents(24375))
	}
}

func TestSum(t *testing.T) {
	// Many small additions must not drift.
	amounts := make([]decimal.Decimal, 0, 100)
	line := decimal.RequireFromString("0.10")
	for i := 0; i < 100; i++ {
		amounts = append(amounts, line)
	}
	got := Sum(amounts...)
	if !got.Equal(decimal.NewFromInt(10)) {
		t.Errorf("Sum(100 x 0.10) = %s, want 10", got)
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		base string
		rate string
		want string
	}{
		{"2500", "9.75", "243.75"},
		{"2500", "1.25", "31.25"},
		{"1250", "9.75", "121.88"}, // 121.875 rounds up
		{"0", "9.75", "0"},
	}
	for _, c := range cases {
		got := Percent(decimal.RequireFromString(c.base), decimal.RequireFromString(c.rate))
		if !got.Equal(decimal.RequireFromString(c.want)) {
			t.Errorf("Percent(%s, %s) = %s, want %s", c.base, c.rate, got, c.want)
		}
	}
}
