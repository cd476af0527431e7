package calc

import "time"

// HousingType identifies the kind of dwelling being purchased.
type HousingType string

// Housing types accepted in listings.
const (
	HousingApartment HousingType = "apartment"
	HousingVilla     HousingType = "villa"
	HousingOfficetel HousingType = "officetel"
	HousingDetached  HousingType = "house"
)

// Housing describes a property listing under consideration for purchase.
type Housing struct {
	Price         int64       `json:"price"`
	Area          float64     `json:"area"` // exclusive floor area in square meters
	Region        string      `json:"region"`
	District      string      `json:"district"`
	RegulatedArea bool        `json:"regulatedArea"`
	Type          HousingType `json:"type"`
}

// Buyer describes the household buying a property.
type Buyer struct {
	HouseCount     int   `json:"houseCount"` // homes currently owned
	FirstTimeBuyer bool  `json:"firstTimeBuyer"`
	Newlywed       bool  `json:"newlywed"`
	ChildCount     int   `json:"childCount"`
	ExpectingChild bool  `json:"expectingChild"` // birth expected within two years
	Income         int64 `json:"income"`
	SpouseIncome   int64 `json:"spouseIncome"`
}

// CombinedIncome returns the household's combined annual income.
func (b Buyer) CombinedIncome() int64 {
	return b.Income + b.SpouseIncome
}

// PropertyForSale describes a currently-owned property being sold.
type PropertyForSale struct {
	PurchasePrice   int64     `json:"purchasePrice"`
	PurchaseDate    time.Time `json:"purchaseDate"`
	CurrentValue    int64     `json:"currentValue"` // expected sale price
	Area            float64   `json:"area"`
	Region          string    `json:"region"`
	District        string    `json:"district"`
	ResidenceYears  int       `json:"residenceYears"`
	ResidenceMonths int       `json:"residenceMonths"`
	SingleHousehold bool      `json:"singleHousehold"` // sole property of a single household
}

// ResidenceTotalMonths returns the total residence period in months.
func (p PropertyForSale) ResidenceTotalMonths() int {
	return p.ResidenceYears*12 + p.ResidenceMonths
}

// AcquisitionTax is the purchase-time tax breakdown.
type AcquisitionTax struct {
	BaseRate             float64 `json:"baseRate"`
	BaseTax              int64   `json:"baseTax"`
	RuralSpecialTax      int64   `json:"ruralSpecialTax"`
	EducationTax         int64   `json:"educationTax"`
	TotalBeforeReduction int64   `json:"totalBeforeReduction"`
	Reduction            int64   `json:"reduction"`
	ReductionReason      string  `json:"reductionReason,omitempty"`
	Total                int64   `json:"total"`
}

// BrokerageFee is the transaction commission breakdown.
type BrokerageFee struct {
	Rate    float64 `json:"rate"`
	BaseFee int64   `json:"baseFee"`
	VAT     int64   `json:"vat"`
	Total   int64   `json:"total"`
}

// ExemptionConditions records the per-condition outcome of the capital gains
// exemption check. The sale is exempt only when every condition holds.
type ExemptionConditions struct {
	SingleHousehold     bool `json:"singleHousehold"`
	HoldingOver2Years   bool `json:"holdingOver2Years"`
	ResidenceOver2Years bool `json:"residenceOver2Years"`
	PriceUnderLimit     bool `json:"priceUnderLimit"`
}

// All reports whether every exemption condition holds.
func (c ExemptionConditions) All() bool {
	return c.SingleHousehold && c.HoldingOver2Years && c.ResidenceOver2Years && c.PriceUnderLimit
}

// SaleResult is the composite outcome of selling a property. HoldingYears and
// HoldingMonths together express the holding period for display: HoldingMonths
// is the remainder after whole years, not the total month count.
type SaleResult struct {
	CapitalGain           int64               `json:"capitalGain"`
	HoldingYears          int                 `json:"holdingYears"`
	HoldingMonths         int                 `json:"holdingMonths"`
	CapitalGainsTax       int64               `json:"capitalGainsTax"`
	LongTermDeduction     int64               `json:"longTermDeduction"`
	LongTermDeductionRate float64             `json:"longTermDeductionRate"`
	BrokerageFee          BrokerageFee        `json:"brokerageFee"`
	NetProceeds           int64               `json:"netProceeds"`
	TaxExempt             bool                `json:"taxExempt"`
	ExemptionConditions   ExemptionConditions `json:"exemptionConditions"`
}

// TotalCost aggregates every cost of a purchase into a grand total.
type TotalCost struct {
	AcquisitionTax  AcquisitionTax `json:"acquisitionTax"`
	BrokerageFee    BrokerageFee   `json:"brokerageFee"`
	LegalFee        int64          `json:"legalFee"`
	HousingBond     int64          `json:"housingBond"` // bond purchase discount cost
	StampDuty       int64          `json:"stampDuty"`
	MovingCost      int64          `json:"movingCost"`
	TotalAdditional int64          `json:"totalAdditional"`
	Total           int64          `json:"total"` // price plus additional costs
}

// LoanType identifies a mortgage product.
type LoanType string

// Mortgage products evaluated for every buyer.
const (
	LoanDidimdol LoanType = "didimdol"
	LoanNewborn  LoanType = "newborn"
	LoanBank     LoanType = "bank"
)

// LoanOffer is the evaluated terms of one mortgage product. Ineligibility is
// business data rather than an error: Eligible is false and Reasons explains
// each criterion, pass or fail.
type LoanOffer struct {
	Type           LoanType `json:"type"`
	Name           string   `json:"name"`
	Limit          int64    `json:"limit"`
	Rate           float64  `json:"rate"`
	MonthlyPayment int64    `json:"monthlyPayment"`
	Eligible       bool     `json:"eligible"`
	Reasons        []string `json:"reasons"`
}

// Recommendation is a funding plan composed from multiple loan offers. The
// offers carry their drawn amount in Limit, which may be below the product's
// full credit limit.
type Recommendation struct {
	Loans          []LoanOffer `json:"loans"`
	TotalAmount    int64       `json:"totalAmount"`
	MonthlyPayment int64       `json:"monthlyPayment"`
}
