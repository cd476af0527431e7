package format

import "testing"

func TestPrice(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		expected string
	}{
		{name: "Eok only", amount: 800_000_000, expected: "8억"},
		{name: "Eok and man", amount: 830_000_000, expected: "8억 3,000만"},
		{name: "Man only", amount: 25_000_000, expected: "2,500만"},
		{name: "Below man", amount: 9_999, expected: "9,999"},
		{name: "Zero", amount: 0, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Price(tt.amount); got != tt.expected {
				t.Errorf("Price(%d) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestPriceWon(t *testing.T) {
	if got := PriceWon(500_000_000); got != "5억원" {
		t.Errorf("PriceWon(500000000) = %q, expected %q", got, "5억원")
	}
}

func TestArea(t *testing.T) {
	tests := []struct {
		area     float64
		expected string
	}{
		{84, "84㎡ (약 25평)"},
		{59, "59㎡ (약 18평)"},
		{114.5, "114.5㎡ (약 35평)"},
	}

	for _, tt := range tests {
		if got := Area(tt.area); got != tt.expected {
			t.Errorf("Area(%v) = %q, expected %q", tt.area, got, tt.expected)
		}
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		rate     float64
		expected string
	}{
		{0.01, "1.00%"},
		{0.0245, "2.45%"},
		{0.4, "40.00%"},
	}

	for _, tt := range tests {
		if got := Percent(tt.rate); got != tt.expected {
			t.Errorf("Percent(%v) = %q, expected %q", tt.rate, got, tt.expected)
		}
	}
}
