// Package history keeps a bounded record of past calculations. Each entry is
// a tagged variant: the Kind names the calculation and exactly one snapshot
// field is set.
package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jwpark-dev/homeplan/pkg/format"
)

// Kind identifies which calculation an entry records.
type Kind string

// Recorded calculation kinds.
const (
	KindFirstBuy        Kind = "first-buy"
	KindTradeUp         Kind = "trade-up"
	KindAcquisitionTax  Kind = "acquisition-tax"
	KindCapitalGainsTax Kind = "capital-gains-tax"
	KindBrokerageFee    Kind = "brokerage-fee"
	KindLoan            Kind = "loan"
)

var kindLabels = map[Kind]string{
	KindFirstBuy:        "처음 집 사기",
	KindTradeUp:         "집 갈아타기",
	KindAcquisitionTax:  "취득세 계산",
	KindCapitalGainsTax: "양도소득세 계산",
	KindBrokerageFee:    "중개수수료 계산",
	KindLoan:            "대출 계산",
}

// Label returns the Korean display name of the kind.
func (k Kind) Label() string {
	return kindLabels[k]
}

// Valid reports whether the kind is one of the recorded calculation kinds.
func (k Kind) Valid() bool {
	_, ok := kindLabels[k]
	return ok
}

// FirstBuySnapshot captures the headline figures of a first-buy simulation.
type FirstBuySnapshot struct {
	PropertyPrice  int64  `json:"propertyPrice"`
	Region         string `json:"region"`
	District       string `json:"district"`
	TotalCost      int64  `json:"totalCost"`
	LoanAmount     int64  `json:"loanAmount"`
	MonthlyPayment int64  `json:"monthlyPayment"`
}

// TradeUpSnapshot captures the headline figures of a trade-up simulation.
type TradeUpSnapshot struct {
	CurrentPropertyValue  int64 `json:"currentPropertyValue"`
	NewPropertyPrice      int64 `json:"newPropertyPrice"`
	NetProceeds           int64 `json:"netProceeds"`
	AdditionalFundsNeeded int64 `json:"additionalFundsNeeded"`
	LoanAmount            int64 `json:"loanAmount"`
}

// AcquisitionTaxSnapshot captures an acquisition tax calculation.
type AcquisitionTaxSnapshot struct {
	PropertyPrice int64   `json:"propertyPrice"`
	HouseCount    int     `json:"houseCount"`
	TotalTax      int64   `json:"totalTax"`
	EffectiveRate float64 `json:"effectiveRate"`
}

// CapitalGainsTaxSnapshot captures a capital gains tax calculation.
type CapitalGainsTaxSnapshot struct {
	SalePrice     int64 `json:"salePrice"`
	PurchasePrice int64 `json:"purchasePrice"`
	CapitalGain   int64 `json:"capitalGain"`
	Tax           int64 `json:"tax"`
	TaxExempt     bool  `json:"taxExempt"`
}

// BrokerageFeeSnapshot captures a brokerage fee calculation.
type BrokerageFeeSnapshot struct {
	TransactionPrice int64   `json:"transactionPrice"`
	Fee              int64   `json:"fee"`
	Rate             float64 `json:"rate"`
}

// LoanSnapshot captures a loan eligibility calculation.
type LoanSnapshot struct {
	PropertyPrice   int64    `json:"propertyPrice"`
	EligibleLoans   []string `json:"eligibleLoans"`
	TotalLoanAmount int64    `json:"totalLoanAmount"`
	MonthlyPayment  int64    `json:"monthlyPayment"`
}

// Entry is one recorded calculation. Exactly one snapshot field matching
// Kind is non-nil.
type Entry struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`

	FirstBuy        *FirstBuySnapshot        `json:"firstBuy,omitempty"`
	TradeUp         *TradeUpSnapshot         `json:"tradeUp,omitempty"`
	AcquisitionTax  *AcquisitionTaxSnapshot  `json:"acquisitionTax,omitempty"`
	CapitalGainsTax *CapitalGainsTaxSnapshot `json:"capitalGainsTax,omitempty"`
	BrokerageFee    *BrokerageFeeSnapshot    `json:"brokerageFee,omitempty"`
	Loan            *LoanSnapshot            `json:"loan,omitempty"`
}

func newEntry(kind Kind) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}
}

// NewFirstBuy returns an entry recording a first-buy simulation.
func NewFirstBuy(s FirstBuySnapshot) Entry {
	e := newEntry(KindFirstBuy)
	e.FirstBuy = &s
	return e
}

// NewTradeUp returns an entry recording a trade-up simulation.
func NewTradeUp(s TradeUpSnapshot) Entry {
	e := newEntry(KindTradeUp)
	e.TradeUp = &s
	return e
}

// NewAcquisitionTax returns an entry recording an acquisition tax calculation.
func NewAcquisitionTax(s AcquisitionTaxSnapshot) Entry {
	e := newEntry(KindAcquisitionTax)
	e.AcquisitionTax = &s
	return e
}

// NewCapitalGainsTax returns an entry recording a capital gains tax calculation.
func NewCapitalGainsTax(s CapitalGainsTaxSnapshot) Entry {
	e := newEntry(KindCapitalGainsTax)
	e.CapitalGainsTax = &s
	return e
}

// NewBrokerageFee returns an entry recording a brokerage fee calculation.
func NewBrokerageFee(s BrokerageFeeSnapshot) Entry {
	e := newEntry(KindBrokerageFee)
	e.BrokerageFee = &s
	return e
}

// NewLoan returns an entry recording a loan eligibility calculation.
func NewLoan(s LoanSnapshot) Entry {
	e := newEntry(KindLoan)
	e.Loan = &s
	return e
}

// Summary renders the entry's headline figures as a single Korean line.
func (e Entry) Summary() string {
	switch e.Kind {
	case KindFirstBuy:
		if s := e.FirstBuy; s != nil {
			return fmt.Sprintf("매매가 %s · %s %s · 총 비용 %s · 대출 %s",
				format.PriceWon(s.PropertyPrice), s.Region, s.District,
				format.PriceWon(s.TotalCost), format.PriceWon(s.LoanAmount))
		}
	case KindTradeUp:
		if s := e.TradeUp; s != nil {
			return fmt.Sprintf("매도 %s · 매수 %s · 매도 실수령 %s · 추가 필요 자금 %s",
				format.PriceWon(s.CurrentPropertyValue), format.PriceWon(s.NewPropertyPrice),
				format.PriceWon(s.NetProceeds), format.PriceWon(s.AdditionalFundsNeeded))
		}
	case KindAcquisitionTax:
		if s := e.AcquisitionTax; s != nil {
			return fmt.Sprintf("매매가 %s · %d주택 · 취득세 %s · 실효세율 %s",
				format.PriceWon(s.PropertyPrice), s.HouseCount,
				format.PriceWon(s.TotalTax), format.Percent(s.EffectiveRate))
		}
	case KindCapitalGainsTax:
		if s := e.CapitalGainsTax; s != nil {
			tax := format.PriceWon(s.Tax)
			if s.TaxExempt {
				tax = "비과세"
			}
			return fmt.Sprintf("매도가 %s · 취득가 %s · 양도차익 %s · 양도세 %s",
				format.PriceWon(s.SalePrice), format.PriceWon(s.PurchasePrice),
				format.PriceWon(s.CapitalGain), tax)
		}
	case KindBrokerageFee:
		if s := e.BrokerageFee; s != nil {
			return fmt.Sprintf("거래가 %s · 요율 %s · 수수료 %s",
				format.PriceWon(s.TransactionPrice), format.Percent(s.Rate),
				format.PriceWon(s.Fee))
		}
	case KindLoan:
		if s := e.Loan; s != nil {
			eligible := strings.Join(s.EligibleLoans, ", ")
			if eligible == "" {
				eligible = "없음"
			}
			return fmt.Sprintf("매매가 %s · 가능 대출 %s · 총 한도 %s · 월 상환 %s",
				format.PriceWon(s.PropertyPrice), eligible,
				format.PriceWon(s.TotalLoanAmount), format.PriceWon(s.MonthlyPayment))
		}
	}
	return e.Kind.Label()
}
