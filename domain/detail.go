package domain

import "github.com/shopspring/decimal"

// QuarterDetailInput son los escalares crudos de la vista detallada,
// pedidos en trimestres, no en meses.
type QuarterDetailInput struct {
	Principal         decimal.Decimal
	AnnualRatePercent decimal.Decimal
	GraceQuarters     int
	AmortQuarters     int
}

// QuarterDetail expands one amortization quarter. Quarter is 1-based
// within the amortization phase.
type QuarterDetail struct {
	Quarter        int
	BalanceAtStart decimal.Decimal
	Interest       decimal.Decimal
	Principal      decimal.Decimal
	TotalPayment   decimal.Decimal
	BalanceAtEnd   decimal.Decimal
}

// QuarterDetailResult carries the expanded quarters plus the derived
// values the view echoes back.
type QuarterDetailResult struct {
	QuarterlyRate       decimal.Decimal
	PrincipalPerQuarter decimal.Decimal
	Quarters            []QuarterDetail
}
