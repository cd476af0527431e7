package calc

import (
	"math"
	"testing"
)

func TestAcquisitionTaxRate(t *testing.T) {
	c := NewWithDefaults(nil)

	tests := []struct {
		name          string
		price         int64
		houseCount    int
		regulatedArea bool
		expected      float64
	}{
		{name: "Single home low bracket", price: 300_000_000, houseCount: 0, expected: 0.01},
		{name: "Single home at tier 1 boundary", price: 600_000_000, houseCount: 0, expected: 0.01},
		{name: "Single home at tier 2 boundary", price: 900_000_000, houseCount: 0, expected: 0.03},
		{name: "Single home above tier 2", price: 1_500_000_000, houseCount: 0, expected: 0.03},
		{name: "Second home", price: 400_000_000, houseCount: 1, expected: 0.08},
		{name: "Second home regulated area", price: 400_000_000, houseCount: 1, regulatedArea: true, expected: 0.08},
		{name: "Third home", price: 400_000_000, houseCount: 2, expected: 0.12},
		{name: "Fourth home regulated area", price: 400_000_000, houseCount: 3, regulatedArea: true, expected: 0.12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.AcquisitionTaxRate(tt.price, tt.houseCount, tt.regulatedArea)
			if got != tt.expected {
				t.Errorf("AcquisitionTaxRate(%d, %d, %v) = %v, expected %v",
					tt.price, tt.houseCount, tt.regulatedArea, got, tt.expected)
			}
		})
	}
}

func TestAcquisitionTaxRateContinuity(t *testing.T) {
	c := NewWithDefaults(nil)

	// The interpolated bracket starts at exactly 1% so there is no jump
	// immediately above the tier 1 boundary.
	atBoundary := c.AcquisitionTaxRate(600_000_000, 0, false)
	justAbove := c.AcquisitionTaxRate(600_000_001, 0, false)
	if math.Abs(justAbove-atBoundary) > 1e-9 {
		t.Errorf("rate jumps at tier 1 boundary: %v -> %v", atBoundary, justAbove)
	}

	// Midpoint of the interpolated bracket sits at 2%.
	mid := c.AcquisitionTaxRate(750_000_000, 0, false)
	if math.Abs(mid-0.02) > 1e-12 {
		t.Errorf("AcquisitionTaxRate(750M) = %v, expected 0.02", mid)
	}
}

func TestAcquisitionTax(t *testing.T) {
	c := NewWithDefaults(nil)

	tests := []struct {
		name            string
		housing         Housing
		buyer           Buyer
		expectedBaseTax int64
		expectedRural   int64
		expectedEdu     int64
		expectedRed     int64
		expectedTotal   int64
	}{
		{
			// Interpolated bracket at 800M: rate 2.333...%, first-time
			// reduction applies and is capped at 2M.
			name:            "First time buyer in interpolated bracket",
			housing:         Housing{Price: 800_000_000, Area: 84, Type: HousingApartment},
			buyer:           Buyer{HouseCount: 0, FirstTimeBuyer: true, Income: 40_000_000, SpouseIncome: 30_000_000},
			expectedBaseTax: 18_666_666,
			expectedRural:   0,
			expectedEdu:     1_866_666,
			expectedRed:     2_000_000,
			expectedTotal:   18_533_332,
		},
		{
			name:            "Low bracket with large area",
			housing:         Housing{Price: 500_000_000, Area: 101.5, Type: HousingApartment},
			buyer:           Buyer{HouseCount: 0, Income: 90_000_000},
			expectedBaseTax: 5_000_000,
			expectedRural:   500_000,
			expectedEdu:     500_000,
			expectedRed:     0,
			expectedTotal:   6_000_000,
		},
		{
			name:            "Second home flat 8 percent",
			housing:         Housing{Price: 300_000_000, Area: 59, Type: HousingVilla},
			buyer:           Buyer{HouseCount: 1, FirstTimeBuyer: false, Income: 50_000_000},
			expectedBaseTax: 24_000_000,
			expectedRural:   0,
			expectedEdu:     2_400_000,
			expectedRed:     0,
			expectedTotal:   26_400_000,
		},
		{
			// A small subtotal caps the reduction below the 2M maximum,
			// keeping the payable amount at zero rather than negative.
			name:            "Reduction capped at subtotal",
			housing:         Housing{Price: 100_000_000, Area: 40, Type: HousingOfficetel},
			buyer:           Buyer{HouseCount: 0, FirstTimeBuyer: true, Income: 30_000_000},
			expectedBaseTax: 1_000_000,
			expectedRural:   0,
			expectedEdu:     100_000,
			expectedRed:     1_100_000,
			expectedTotal:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.AcquisitionTax(tt.housing, tt.buyer)

			if result.BaseTax != tt.expectedBaseTax {
				t.Errorf("BaseTax = %d, expected %d", result.BaseTax, tt.expectedBaseTax)
			}
			if result.RuralSpecialTax != tt.expectedRural {
				t.Errorf("RuralSpecialTax = %d, expected %d", result.RuralSpecialTax, tt.expectedRural)
			}
			if result.EducationTax != tt.expectedEdu {
				t.Errorf("EducationTax = %d, expected %d", result.EducationTax, tt.expectedEdu)
			}
			if result.Reduction != tt.expectedRed {
				t.Errorf("Reduction = %d, expected %d", result.Reduction, tt.expectedRed)
			}
			if result.Total != tt.expectedTotal {
				t.Errorf("Total = %d, expected %d", result.Total, tt.expectedTotal)
			}
			if result.Total != result.TotalBeforeReduction-result.Reduction {
				t.Errorf("Total %d does not equal subtotal %d minus reduction %d",
					result.Total, result.TotalBeforeReduction, result.Reduction)
			}
			if tt.expectedRed > 0 && result.ReductionReason == "" {
				t.Errorf("expected a reduction reason when a reduction applies")
			}
		})
	}
}

func TestAcquisitionTaxReductionGates(t *testing.T) {
	c := NewWithDefaults(nil)
	housing := Housing{Price: 500_000_000, Area: 59}

	tests := []struct {
		name  string
		buyer Buyer
	}{
		{name: "Not first time", buyer: Buyer{HouseCount: 0, FirstTimeBuyer: false, Income: 50_000_000}},
		{name: "Already owns a home", buyer: Buyer{HouseCount: 1, FirstTimeBuyer: true, Income: 50_000_000}},
		{name: "Income above limit", buyer: Buyer{HouseCount: 0, FirstTimeBuyer: true, Income: 50_000_000, SpouseIncome: 20_000_001}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.AcquisitionTax(housing, tt.buyer)
			if result.Reduction != 0 {
				t.Errorf("Reduction = %d, expected 0", result.Reduction)
			}
			if result.ReductionReason != "" {
				t.Errorf("ReductionReason = %q, expected empty", result.ReductionReason)
			}
		})
	}

	// Price above the relief ceiling also blocks the reduction.
	expensive := Housing{Price: 1_200_000_001, Area: 59}
	result := c.AcquisitionTax(expensive, Buyer{HouseCount: 0, FirstTimeBuyer: true, Income: 50_000_000})
	if result.Reduction != 0 {
		t.Errorf("Reduction = %d, expected 0 above the price ceiling", result.Reduction)
	}
}

func TestAcquisitionRatePreviewAgreesWithFullCalculator(t *testing.T) {
	c := NewWithDefaults(nil)

	prices := []int64{0, 1, 599_999_999, 600_000_000, 600_000_001, 750_000_000, 899_999_999, 900_000_000, 900_000_001, 2_000_000_000}
	for _, price := range prices {
		for houseCount := 0; houseCount <= 3; houseCount++ {
			full := c.AcquisitionTax(Housing{Price: price, Area: 59}, Buyer{HouseCount: houseCount})
			preview := c.AcquisitionTaxRate(price, houseCount, false)
			if full.BaseRate != preview {
				t.Errorf("price %d houseCount %d: full rate %v != preview rate %v",
					price, houseCount, full.BaseRate, preview)
			}
		}
	}
}
