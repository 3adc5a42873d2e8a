package domain

import "github.com/shopspring/decimal"

// RateSearchInput invierte el problema: dado el interés total realmente
// pagado, encontrar la tasa nominal anual que lo produce.
type RateSearchInput struct {
	Principal      decimal.Decimal
	TotalMonths    int
	GraceMonths    int
	TargetInterest decimal.Decimal
}

// RateSearchResult is the outcome of the bisection search.
type RateSearchResult struct {
	NominalAnnualRate    decimal.Decimal
	EffectiveAnnualRate  decimal.Decimal
	GraceInterest        decimal.Decimal
	AmortizationInterest decimal.Decimal
	TotalInterest        decimal.Decimal
	// Difference is the achieved |TotalInterest - target|.
	Difference decimal.Decimal
	Iterations int
}
