package calc

import (
	"strings"
	"testing"
)

func TestDidimdolLoan(t *testing.T) {
	c := NewWithDefaults(nil)

	t.Run("Eligible newlywed", func(t *testing.T) {
		housing := Housing{Price: 500_000_000, Area: 59}
		buyer := Buyer{HouseCount: 0, Newlywed: true, Income: 45_000_000, SpouseIncome: 35_000_000}

		offer := c.DidimdolLoan(housing, buyer)

		if !offer.Eligible {
			t.Fatalf("expected eligibility, reasons = %v", offer.Reasons)
		}
		// min(newlywed cap 400M, 70% LTV 350M).
		if offer.Limit != 350_000_000 {
			t.Errorf("Limit = %d, expected 350,000,000", offer.Limit)
		}
		if offer.Rate != 0.021 {
			t.Errorf("Rate = %v, expected newlywed rate 0.021", offer.Rate)
		}
		if offer.MonthlyPayment <= 0 {
			t.Errorf("expected a positive monthly payment")
		}
		if len(offer.Reasons) != 3 {
			t.Errorf("expected one note per criterion, got %d: %v", len(offer.Reasons), offer.Reasons)
		}
	})

	t.Run("Eligible single capped by product limit", func(t *testing.T) {
		housing := Housing{Price: 450_000_000, Area: 59}
		buyer := Buyer{HouseCount: 0, Income: 55_000_000}

		offer := c.DidimdolLoan(housing, buyer)

		if !offer.Eligible {
			t.Fatalf("expected eligibility, reasons = %v", offer.Reasons)
		}
		// 70% LTV is 315M but the general cap is 250M.
		if offer.Limit != 250_000_000 {
			t.Errorf("Limit = %d, expected 250,000,000", offer.Limit)
		}
		if offer.Rate != 0.027 {
			t.Errorf("Rate = %v, expected base rate 0.027", offer.Rate)
		}
	})

	t.Run("Homeowner is ineligible but fully evaluated", func(t *testing.T) {
		housing := Housing{Price: 600_000_000, Area: 59}
		buyer := Buyer{HouseCount: 1, Income: 90_000_000}

		offer := c.DidimdolLoan(housing, buyer)

		if offer.Eligible {
			t.Fatalf("expected ineligibility")
		}
		if offer.Limit != 0 {
			t.Errorf("Limit = %d, expected 0 when ineligible", offer.Limit)
		}
		if offer.MonthlyPayment != 0 {
			t.Errorf("MonthlyPayment = %d, expected 0 when ineligible", offer.MonthlyPayment)
		}
		// Failing the first criterion must not short-circuit the rest: the
		// income and price criteria still contribute notes.
		if len(offer.Reasons) != 3 {
			t.Errorf("expected one note per criterion, got %d: %v", len(offer.Reasons), offer.Reasons)
		}
	})

	t.Run("Income ceiling tiers", func(t *testing.T) {
		housing := Housing{Price: 400_000_000, Area: 59}

		// 65M combined exceeds the single ceiling but a spouse income
		// moves the household to the married ceiling.
		single := c.DidimdolLoan(housing, Buyer{HouseCount: 0, Income: 65_000_000})
		if single.Eligible {
			t.Errorf("expected single-income household above 60M to be ineligible")
		}

		married := c.DidimdolLoan(housing, Buyer{HouseCount: 0, Income: 45_000_000, SpouseIncome: 20_000_000})
		if !married.Eligible {
			t.Errorf("expected dual-income household at 65M to be eligible, reasons = %v", married.Reasons)
		}

		// 80M combined only passes under the newlywed ceiling.
		overMarried := c.DidimdolLoan(housing, Buyer{HouseCount: 0, Income: 60_000_000, SpouseIncome: 20_000_000})
		if overMarried.Eligible {
			t.Errorf("expected dual-income household at 80M to be ineligible")
		}

		newlywed := c.DidimdolLoan(housing, Buyer{HouseCount: 0, Newlywed: true, Income: 60_000_000, SpouseIncome: 20_000_000})
		if !newlywed.Eligible {
			t.Errorf("expected newlywed household at 80M to be eligible, reasons = %v", newlywed.Reasons)
		}
	})
}

func TestNewbornLoan(t *testing.T) {
	c := NewWithDefaults(nil)

	t.Run("Eligible with child", func(t *testing.T) {
		housing := Housing{Price: 700_000_000, Area: 84}
		buyer := Buyer{HouseCount: 0, ChildCount: 1, Income: 70_000_000, SpouseIncome: 50_000_000}

		offer := c.NewbornLoan(housing, buyer)

		if !offer.Eligible {
			t.Fatalf("expected eligibility, reasons = %v", offer.Reasons)
		}
		// min(product cap 500M, 80% LTV 560M).
		if offer.Limit != 500_000_000 {
			t.Errorf("Limit = %d, expected 500,000,000", offer.Limit)
		}
		// Midpoint of the 1.6%-3.3% band.
		if offer.Rate != 0.0245 {
			t.Errorf("Rate = %v, expected 0.0245", offer.Rate)
		}
	})

	t.Run("Eligible when expecting", func(t *testing.T) {
		housing := Housing{Price: 400_000_000, Area: 59}
		buyer := Buyer{HouseCount: 1, ExpectingChild: true, Income: 80_000_000}

		offer := c.NewbornLoan(housing, buyer)

		if !offer.Eligible {
			t.Fatalf("expected eligibility with one home and a birth expected, reasons = %v", offer.Reasons)
		}
		// 80% LTV 320M is below the 500M product cap.
		if offer.Limit != 320_000_000 {
			t.Errorf("Limit = %d, expected 320,000,000", offer.Limit)
		}
	})

	t.Run("No child and none expected", func(t *testing.T) {
		housing := Housing{Price: 400_000_000, Area: 59}
		buyer := Buyer{HouseCount: 0, Income: 50_000_000}

		offer := c.NewbornLoan(housing, buyer)

		if offer.Eligible {
			t.Fatalf("expected ineligibility without children")
		}
		if offer.Limit != 0 {
			t.Errorf("Limit = %d, expected 0", offer.Limit)
		}
		if len(offer.Reasons) != 4 {
			t.Errorf("expected one note per criterion, got %d: %v", len(offer.Reasons), offer.Reasons)
		}
	})

	t.Run("Two homes fails regardless of children", func(t *testing.T) {
		housing := Housing{Price: 400_000_000, Area: 59}
		buyer := Buyer{HouseCount: 2, ChildCount: 2, Income: 50_000_000}

		offer := c.NewbornLoan(housing, buyer)

		if offer.Eligible {
			t.Fatalf("expected ineligibility with two existing homes")
		}
	})
}

func TestBankMortgage(t *testing.T) {
	c := NewWithDefaults(nil)

	t.Run("LTV bound in non-regulated area", func(t *testing.T) {
		housing := Housing{Price: 600_000_000, Area: 84, RegulatedArea: false}
		buyer := Buyer{Income: 100_000_000}

		offer := c.BankMortgage(housing, buyer)

		if !offer.Eligible {
			t.Fatalf("bank mortgage must always be eligible")
		}
		// 50% LTV of 600M binds below the DSR limit of roughly 658M.
		if offer.Limit != 300_000_000 {
			t.Errorf("Limit = %d, expected 300,000,000", offer.Limit)
		}
		if !hasReasonContaining(offer.Reasons, "LTV 기준") {
			t.Errorf("expected an LTV-bound note, reasons = %v", offer.Reasons)
		}
	})

	t.Run("DSR bound at low income", func(t *testing.T) {
		housing := Housing{Price: 600_000_000, Area: 84, RegulatedArea: false}
		buyer := Buyer{Income: 30_000_000}

		offer := c.BankMortgage(housing, buyer)

		// DSR budget of 1M per month caps near 197M, below the 300M LTV.
		if offer.Limit >= 300_000_000 {
			t.Errorf("Limit = %d, expected DSR to bind below the LTV limit", offer.Limit)
		}
		if !hasReasonContaining(offer.Reasons, "DSR 기준") {
			t.Errorf("expected a DSR-bound note, reasons = %v", offer.Reasons)
		}
	})

	t.Run("Regulated area tightens LTV", func(t *testing.T) {
		housing := Housing{Price: 600_000_000, Area: 84, RegulatedArea: true}
		buyer := Buyer{Income: 100_000_000}

		offer := c.BankMortgage(housing, buyer)

		if offer.Limit != 240_000_000 {
			t.Errorf("Limit = %d, expected 40%% LTV of 240,000,000", offer.Limit)
		}
	})

	t.Run("Rate is the band average", func(t *testing.T) {
		offer := c.BankMortgage(Housing{Price: 500_000_000}, Buyer{Income: 80_000_000})
		if offer.Rate != 0.045 {
			t.Errorf("Rate = %v, expected 0.045", offer.Rate)
		}
	})
}

func TestAllLoans(t *testing.T) {
	c := NewWithDefaults(nil)

	offers := c.AllLoans(Housing{Price: 500_000_000, Area: 84}, Buyer{HouseCount: 0, Income: 50_000_000})

	if len(offers) != 3 {
		t.Fatalf("expected 3 offers, got %d", len(offers))
	}
	expectedOrder := []LoanType{LoanDidimdol, LoanNewborn, LoanBank}
	for i, offer := range offers {
		if offer.Type != expectedOrder[i] {
			t.Errorf("offer %d type = %s, expected %s", i, offer.Type, expectedOrder[i])
		}
	}
}

func hasReasonContaining(reasons []string, substr string) bool {
	for _, reason := range reasons {
		if strings.Contains(reason, substr) {
			return true
		}
	}
	return false
}
