// Package output renders calculation results for the CLI, as human-readable
// text or as JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jwpark-dev/homeplan/internal/calc"
	"github.com/jwpark-dev/homeplan/internal/simulation"
	"github.com/jwpark-dev/homeplan/pkg/format"
)

// JSONFormat writes any result as indented JSON.
func JSONFormat(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrettyListing writes the property listing a purchase calculation ran against.
func PrettyListing(w io.Writer, housing calc.Housing) {
	fmt.Fprintf(w, "--- 매물 정보 ---\n")
	if housing.Region != "" || housing.District != "" {
		fmt.Fprintf(w, "소재지   | %s %s\n", housing.Region, housing.District)
	}
	fmt.Fprintf(w, "매매가   | %s\n", format.PriceWon(housing.Price))
	if housing.Area > 0 {
		fmt.Fprintf(w, "전용면적 | %s\n", format.Area(housing.Area))
	}
	if housing.RegulatedArea {
		fmt.Fprintf(w, "조정대상지역\n")
	}
}

// PrettyAcquisitionTax writes a human-readable acquisition tax breakdown.
func PrettyAcquisitionTax(w io.Writer, result calc.AcquisitionTax) {
	fmt.Fprintf(w, "--- 취득세 ---\n")
	fmt.Fprintf(w, "기본세율        | %s\n", format.Percent(result.BaseRate))
	fmt.Fprintf(w, "취득세          | %s\n", format.Won(result.BaseTax))
	if result.RuralSpecialTax > 0 {
		fmt.Fprintf(w, "농어촌특별세    | %s\n", format.Won(result.RuralSpecialTax))
	}
	fmt.Fprintf(w, "지방교육세      | %s\n", format.Won(result.EducationTax))
	if result.Reduction > 0 {
		fmt.Fprintf(w, "감면 (%s) | -%s\n", result.ReductionReason, format.Won(result.Reduction))
	}
	fmt.Fprintf(w, "합계            | %s\n", format.Won(result.Total))
}

// PrettyBrokerageFee writes a human-readable brokerage fee breakdown.
func PrettyBrokerageFee(w io.Writer, result calc.BrokerageFee) {
	fmt.Fprintf(w, "--- 중개수수료 ---\n")
	fmt.Fprintf(w, "상한요율 | %s\n", format.Percent(result.Rate))
	fmt.Fprintf(w, "수수료   | %s\n", format.Won(result.BaseFee))
	fmt.Fprintf(w, "부가세   | %s\n", format.Won(result.VAT))
	fmt.Fprintf(w, "합계     | %s\n", format.Won(result.Total))
}

// PrettyTotalCost writes a human-readable total purchase cost breakdown.
func PrettyTotalCost(w io.Writer, result calc.TotalCost) {
	fmt.Fprintf(w, "--- 총 매수 비용 ---\n")
	fmt.Fprintf(w, "취득세      | %s\n", format.Won(result.AcquisitionTax.Total))
	fmt.Fprintf(w, "중개수수료  | %s\n", format.Won(result.BrokerageFee.Total))
	fmt.Fprintf(w, "법무사 비용 | %s\n", format.Won(result.LegalFee))
	fmt.Fprintf(w, "채권할인    | %s\n", format.Won(result.HousingBond))
	fmt.Fprintf(w, "인지세      | %s\n", format.Won(result.StampDuty))
	fmt.Fprintf(w, "이사비용    | %s\n", format.Won(result.MovingCost))
	fmt.Fprintf(w, "부대비용 계 | %s\n", format.Won(result.TotalAdditional))
	fmt.Fprintf(w, "총계        | %s\n", format.PriceWon(result.Total))
}

// PrettySaleResult writes a human-readable sale outcome.
func PrettySaleResult(w io.Writer, result calc.SaleResult) {
	fmt.Fprintf(w, "--- 매도 결과 ---\n")
	fmt.Fprintf(w, "양도차익    | %s\n", format.PriceWon(result.CapitalGain))
	fmt.Fprintf(w, "보유기간    | %d년 %d개월\n", result.HoldingYears, result.HoldingMonths)
	if result.TaxExempt {
		fmt.Fprintf(w, "양도소득세  | 0원 (비과세)\n")
	} else {
		fmt.Fprintf(w, "장기보유특별공제 | %s (%s)\n",
			format.Won(result.LongTermDeduction), format.Percent(result.LongTermDeductionRate))
		fmt.Fprintf(w, "양도소득세  | %s\n", format.Won(result.CapitalGainsTax))
	}
	fmt.Fprintf(w, "중개수수료  | %s\n", format.Won(result.BrokerageFee.Total))
	fmt.Fprintf(w, "실수령액    | %s\n", format.PriceWon(result.NetProceeds))
}

// PrettyLoans writes every loan offer with its eligibility notes.
func PrettyLoans(w io.Writer, offers []calc.LoanOffer) {
	fmt.Fprintf(w, "--- 대출 한도 ---\n")
	for _, offer := range offers {
		status := "가능"
		if !offer.Eligible {
			status = "불가"
		}
		fmt.Fprintf(w, "%s (%s)\n", offer.Name, status)
		if offer.Eligible {
			fmt.Fprintf(w, "  한도 %s | 금리 %s | 월 상환 %s\n",
				format.PriceWon(offer.Limit), format.Percent(offer.Rate), format.Won(offer.MonthlyPayment))
		}
		for _, reason := range offer.Reasons {
			fmt.Fprintf(w, "  - %s\n", reason)
		}
	}
}

// PrettyRecommendation writes a recommended loan combination.
func PrettyRecommendation(w io.Writer, rec calc.Recommendation) {
	fmt.Fprintf(w, "--- 추천 대출 조합 ---\n")
	if len(rec.Loans) == 0 {
		fmt.Fprintf(w, "대출이 필요하지 않습니다\n")
		return
	}
	for _, loan := range rec.Loans {
		fmt.Fprintf(w, "%s | %s | 금리 %s\n", loan.Name, format.PriceWon(loan.Limit), format.Percent(loan.Rate))
	}
	fmt.Fprintf(w, "총 대출금   | %s\n", format.PriceWon(rec.TotalAmount))
	fmt.Fprintf(w, "월 상환액   | %s\n", format.Won(rec.MonthlyPayment))
}

// PrettyFirstBuy writes a first-buy simulation result.
func PrettyFirstBuy(w io.Writer, result simulation.FirstBuyResult) {
	fmt.Fprintf(w, "=== 처음 집 사기 시뮬레이션 ===\n")
	PrettyTotalCost(w, result.Cost)
	PrettyLoans(w, result.Loans)
	PrettyRecommendation(w, result.Recommendation)
	fmt.Fprintf(w, "필요 대출금 | %s\n", format.PriceWon(result.TargetLoanAmount))
	if result.AdditionalNeeded > 0 {
		fmt.Fprintf(w, "추가 필요 자금 | %s\n", format.PriceWon(result.AdditionalNeeded))
	} else {
		fmt.Fprintf(w, "자금 조달 완료\n")
	}
}

// PrettyTradeUp writes a trade-up simulation result.
func PrettyTradeUp(w io.Writer, result simulation.TradeUpResult) {
	fmt.Fprintf(w, "=== 집 갈아타기 시뮬레이션 ===\n")
	PrettySaleResult(w, result.Sale)
	PrettyTotalCost(w, result.PurchaseCost)
	fmt.Fprintf(w, "추가 필요 자금 | %s\n", format.PriceWon(result.AdditionalFundsNeeded))
	PrettyRecommendation(w, result.Recommendation)
	fmt.Fprintf(w, "필요 자기자본 | %s\n", format.PriceWon(result.RequiredCapital))
	if len(result.Alternatives) > 0 {
		fmt.Fprintf(w, "--- 대안 가격대 ---\n")
		for _, alt := range result.Alternatives {
			fmt.Fprintf(w, "%s | 추가 자금 %s | 대출 가능 %s | 자기자본 %s\n",
				format.PriceWon(alt.Price), format.PriceWon(alt.AdditionalFunds),
				format.PriceWon(alt.LoanAvailable), format.PriceWon(alt.RequiredCapital))
		}
	}
}
