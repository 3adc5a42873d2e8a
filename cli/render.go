package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"loan-amortizer/domain"
)

var oneHundred = decimal.NewFromInt(100)

func renderSchedule(w io.Writer, terms domain.LoanTerms, result domain.ScheduleResult) {
	fmt.Fprintln(w, "\n=== LOAN STRUCTURE ===")
	fmt.Fprintf(w, "Total loan: €%s\n", formatMoney(terms.Principal))
	fmt.Fprintf(w, "Total period: %d months\n", terms.TotalMonths)
	fmt.Fprintf(w, "Annual rate: %s%%\n", terms.AnnualRatePercent.String())
	fmt.Fprintf(w, "Quarterly rate: %s%%\n", result.QuarterlyRate.Mul(oneHundred).StringFixed(4))

	fmt.Fprintf(w, "\nGrace period: %d months (%d quarters)\n", terms.GraceMonths, result.GraceQuarters)
	fmt.Fprintf(w, "Amortization period: %d months (%d quarters)\n",
		terms.TotalMonths-terms.GraceMonths, result.AmortQuarters)
	fmt.Fprintf(w, "Principal per quarter: €%s\n", result.PrincipalPerQuarter.StringFixed(2))

	fmt.Fprintln(w, "\n=== QUARTERLY PAYMENT SCHEDULE ===")
	fmt.Fprintf(w, "%-8s %-11s %-10s %-11s %-12s\n", "Quarter", "Principal", "Interest", "Total Pay", "Balance")
	fmt.Fprintln(w, strings.Repeat("-", 60))

	fmt.Fprintln(w, "GRACE PERIOD (Interest Only):")
	for _, row := range result.Rows {
		if row.Phase != domain.PhaseGrace {
			continue
		}
		renderScheduleRow(w, row)
	}

	fmt.Fprintln(w, "\nAMORTIZATION PERIOD (Equal Principal + Interest):")
	for _, row := range result.Rows {
		if row.Phase != domain.PhaseAmortization {
			continue
		}
		renderScheduleRow(w, row)
	}

	fmt.Fprintln(w, "\n=== FINAL SUMMARY ===")
	fmt.Fprintf(w, "Original principal: €%s\n", formatMoney(terms.Principal))
	fmt.Fprintf(w, "Grace period interest: €%s\n", formatMoney(result.TotalGraceInterest))
	fmt.Fprintf(w, "Amortization interest: €%s\n", formatMoney(result.TotalAmortizationInterest))
	fmt.Fprintf(w, "TOTAL INTEREST PAID: €%s\n", formatMoney(result.TotalInterest))
	fmt.Fprintf(w, "Total amount paid: €%s\n", formatMoney(result.TotalPayment))
	fmt.Fprintf(w, "Nominal annual rate: %s%%\n", terms.AnnualRatePercent.String())
	fmt.Fprintf(w, "REAL effective annual rate: %s%%\n", result.EffectiveAnnualRate.StringFixed(2))

	fmt.Fprintln(w, "\n=== VERIFICATION ===")
	fmt.Fprintf(w, "Grace period: %d × €%s = €%s\n",
		result.GraceQuarters, result.GraceInterestPerQuarter.StringFixed(2),
		result.TotalGraceInterest.StringFixed(2))
	fmt.Fprintf(w, "Principal payments: %d × €%s = €%s\n",
		result.AmortQuarters, result.PrincipalPerQuarter.StringFixed(2),
		result.PrincipalPerQuarter.Mul(decimal.NewFromInt(int64(result.AmortQuarters))).StringFixed(2))
	fmt.Fprintf(w, "Amortization interest: €%s\n", result.TotalAmortizationInterest.StringFixed(2))
	fmt.Fprintf(w, "Grand total interest: €%s\n", result.TotalInterest.StringFixed(2))
}

func renderScheduleRow(w io.Writer, row domain.QuarterRow) {
	fmt.Fprintf(w, "%-8d €%-10s €%-9s €%-10s €%-11s\n",
		row.Quarter,
		row.Principal.StringFixed(2),
		row.Interest.StringFixed(2),
		row.TotalPayment.StringFixed(2),
		row.RemainingBalance.StringFixed(2))
}

func renderDetail(w io.Writer, input domain.QuarterDetailInput, result domain.QuarterDetailResult) {
	ratePercent := result.QuarterlyRate.Mul(oneHundred).StringFixed(4)

	fmt.Fprintf(w, "\nQuarterly rate: %s%%\n", ratePercent)
	fmt.Fprintf(w, "Principal per quarter: €%s\n", result.PrincipalPerQuarter.StringFixed(2))

	fmt.Fprintln(w, "\nDetailed calculation for first few amortization quarters:")
	for _, q := range result.Quarters {
		fmt.Fprintf(w, "\nQuarter %d:\n", input.GraceQuarters+q.Quarter)
		fmt.Fprintf(w, "  Balance at start: €%s\n", q.BalanceAtStart.StringFixed(2))
		fmt.Fprintf(w, "  Interest (%s%%): €%s\n", ratePercent, q.Interest.StringFixed(2))
		fmt.Fprintf(w, "  Principal payment: €%s\n", q.Principal.StringFixed(2))
		fmt.Fprintf(w, "  Total payment: €%s\n", q.TotalPayment.StringFixed(2))
		fmt.Fprintf(w, "  Balance at end: €%s\n", q.BalanceAtEnd.StringFixed(2))
	}
}

func renderRateSearch(w io.Writer, input domain.RateSearchInput, result domain.RateSearchResult) {
	fmt.Fprintf(w, "\nTo achieve €%s total interest:\n", input.TargetInterest.StringFixed(2))
	fmt.Fprintf(w, "Nominal annual rate: %s%%\n", result.NominalAnnualRate.StringFixed(2))
	fmt.Fprintf(w, "Effective annual rate: %s%%\n", result.EffectiveAnnualRate.StringFixed(2))
	fmt.Fprintf(w, "Grace interest: €%s\n", result.GraceInterest.StringFixed(2))
	fmt.Fprintf(w, "Amortization interest: €%s\n", result.AmortizationInterest.StringFixed(2))
}

// formatMoney agrupa los miles con coma, al estilo 1,234,567.89.
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	dot := strings.Index(s, ".")
	intPart, fracPart := s[:dot], s[dot:]

	for i := len(intPart) - 3; i > 0; i -= 3 {
		intPart = intPart[:i] + "," + intPart[i:]
	}

	if neg {
		return "-" + intPart + fracPart
	}
	return intPart + fracPart
}
