// Package simulation composes the individual calculators into end-to-end
// purchase scenarios: buying a first home against available capital, and
// selling a current home to fund a more expensive one.
package simulation

import (
	"time"

	"go.uber.org/zap"

	"github.com/jwpark-dev/homeplan/internal/calc"
)

// Price deltas explored around the intended purchase price when simulating a
// trade-up, in won.
var alternativeDeltas = []int64{-200_000_000, -100_000_000, 100_000_000, 200_000_000}

// Simulator runs scenario compositions on top of a Calculator.
type Simulator struct {
	calc   *calc.Calculator
	logger *zap.Logger
}

// New returns a Simulator using the given calculator. A nil logger is
// replaced with a no-op logger.
func New(c *calc.Calculator, logger *zap.Logger) *Simulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Simulator{calc: c, logger: logger}
}

// FirstBuyInput describes a first home purchase scenario.
type FirstBuyInput struct {
	Housing          calc.Housing `json:"housing"`
	Buyer            calc.Buyer   `json:"buyer"`
	AvailableCapital int64        `json:"availableCapital"`
}

// FirstBuyResult is the composed outcome of a first-buy simulation.
// AdditionalNeeded is the shortfall left after own capital and the
// recommended loans, zero when the plan is fully funded.
type FirstBuyResult struct {
	Cost             calc.TotalCost      `json:"cost"`
	Loans            []calc.LoanOffer    `json:"loans"`
	TargetLoanAmount int64               `json:"targetLoanAmount"`
	Recommendation   calc.Recommendation `json:"recommendation"`
	AdditionalNeeded int64               `json:"additionalNeeded"`
}

// FirstBuy simulates buying a first home: full purchase cost, every loan
// offer, and a recommended loan combination covering the gap between the
// total cost and the buyer's available capital.
func (s *Simulator) FirstBuy(input FirstBuyInput) FirstBuyResult {
	cost := s.calc.TotalCost(input.Housing, input.Buyer)
	loans := s.calc.AllLoans(input.Housing, input.Buyer)

	target := max(0, cost.Total-input.AvailableCapital)
	recommendation := s.calc.Recommend(loans, target)
	additionalNeeded := max(0, cost.Total-input.AvailableCapital-recommendation.TotalAmount)

	s.logger.Debug("simulated first buy",
		zap.String("op", "simulation.FirstBuy"),
		zap.Int64("price", input.Housing.Price),
		zap.Int64("totalCost", cost.Total),
		zap.Int64("targetLoan", target),
		zap.Int64("additionalNeeded", additionalNeeded),
	)

	return FirstBuyResult{
		Cost:             cost,
		Loans:            loans,
		TargetLoanAmount: target,
		Recommendation:   recommendation,
		AdditionalNeeded: additionalNeeded,
	}
}

// TradeUpInput describes selling the current home to buy a new one.
type TradeUpInput struct {
	CurrentProperty calc.PropertyForSale `json:"currentProperty"`
	NewHousing      calc.Housing         `json:"newHousing"`
	Buyer           calc.Buyer           `json:"buyer"`
}

// Alternative is one re-simulated price point around the intended purchase.
type Alternative struct {
	Price           int64 `json:"price"`
	AdditionalFunds int64 `json:"additionalFunds"`
	LoanAvailable   int64 `json:"loanAvailable"`
	RequiredCapital int64 `json:"requiredCapital"`
}

// TradeUpResult is the composed outcome of a trade-up simulation.
// AdditionalFundsNeeded may be negative when the sale proceeds exceed the
// purchase cost; RequiredCapital is the part of a positive shortfall the
// recommended loans cannot cover.
type TradeUpResult struct {
	Sale                  calc.SaleResult     `json:"sale"`
	PurchaseCost          calc.TotalCost      `json:"purchaseCost"`
	Loans                 []calc.LoanOffer    `json:"loans"`
	AdditionalFundsNeeded int64               `json:"additionalFundsNeeded"`
	Recommendation        calc.Recommendation `json:"recommendation"`
	RequiredCapital       int64               `json:"requiredCapital"`
	Alternatives          []Alternative       `json:"alternatives"`
}

// TradeUp simulates a trade-up as of the current date.
func (s *Simulator) TradeUp(input TradeUpInput) TradeUpResult {
	return s.TradeUpAt(input, time.Now())
}

// TradeUpAt simulates selling the current property and buying the new one,
// evaluating the holding period as of the given date. The purchase is taxed
// at owner-occupier rates: a seller disposing of the old home within the
// grace window is treated as owning zero homes for acquisition tax, while
// loan eligibility still sees the real house count.
func (s *Simulator) TradeUpAt(input TradeUpInput, asOf time.Time) TradeUpResult {
	sale := s.calc.SaleResultAt(input.CurrentProperty, asOf)

	taxBuyer := input.Buyer
	taxBuyer.HouseCount = 0
	purchaseCost := s.calc.TotalCost(input.NewHousing, taxBuyer)
	loans := s.calc.AllLoans(input.NewHousing, input.Buyer)

	additionalFunds := purchaseCost.Total - sale.NetProceeds
	recommendation := s.calc.Recommend(loans, max(0, additionalFunds))
	requiredCapital := max(0, additionalFunds-recommendation.TotalAmount)

	alternatives := make([]Alternative, 0, len(alternativeDeltas))
	for _, delta := range alternativeDeltas {
		price := input.NewHousing.Price + delta
		if price <= 0 {
			continue
		}
		altHousing := input.NewHousing
		altHousing.Price = price
		altCost := s.calc.TotalCost(altHousing, taxBuyer)
		altFunds := altCost.Total - sale.NetProceeds
		altRec := s.calc.Recommend(loans, max(0, altFunds))
		alternatives = append(alternatives, Alternative{
			Price:           price,
			AdditionalFunds: altFunds,
			LoanAvailable:   altRec.TotalAmount,
			RequiredCapital: max(0, altFunds-altRec.TotalAmount),
		})
	}

	s.logger.Debug("simulated trade-up",
		zap.String("op", "simulation.TradeUp"),
		zap.Int64("netProceeds", sale.NetProceeds),
		zap.Int64("purchaseTotal", purchaseCost.Total),
		zap.Int64("additionalFunds", additionalFunds),
		zap.Int64("requiredCapital", requiredCapital),
	)

	return TradeUpResult{
		Sale:                  sale,
		PurchaseCost:          purchaseCost,
		Loans:                 loans,
		AdditionalFundsNeeded: additionalFunds,
		Recommendation:        recommendation,
		RequiredCapital:       requiredCapital,
		Alternatives:          alternatives,
	}
}
