package domain

import "github.com/shopspring/decimal"

var (
	oneHundred      = decimal.NewFromInt(100)
	quartersPerYear = decimal.NewFromInt(4)
)

// LoanTerms describe un préstamo con periodo de gracia seguido de
// amortización trimestral a capital constante.
type LoanTerms struct {
	Principal         decimal.Decimal
	AnnualRatePercent decimal.Decimal
	TotalMonths       int
	GraceMonths       int
}

// GraceQuarters returns the number of whole interest-only quarters.
func (t LoanTerms) GraceQuarters() int {
	return t.GraceMonths / 3
}

// AmortQuarters returns the number of whole equal-principal quarters.
func (t LoanTerms) AmortQuarters() int {
	return (t.TotalMonths - t.GraceMonths) / 3
}

// QuarterlyRate returns the flat quarterly rate for the loan terms.
func (t LoanTerms) QuarterlyRate() decimal.Decimal {
	return QuarterlyRate(t.AnnualRatePercent)
}

// QuarterlyRate converts a nominal annual percentage into the flat
// quarterly rate: rate / 100 / 4.
func QuarterlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(oneHundred).Div(quartersPerYear)
}
