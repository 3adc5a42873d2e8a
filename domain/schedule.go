package domain

import "github.com/shopspring/decimal"

// Phase identifica el tramo del préstamo al que pertenece un trimestre.
type Phase string

const (
	PhaseGrace        Phase = "grace"
	PhaseAmortization Phase = "amortization"
)

// saldo por debajo de este umbral se considera liquidado
var balanceEpsilon = decimal.NewFromFloat(0.01)

// QuarterRow is one line of the payment schedule. Quarter is 1-based
// across the whole loan, grace quarters included. Values carry full
// precision; rounding happens at presentation.
type QuarterRow struct {
	Quarter          int
	Phase            Phase
	Principal        decimal.Decimal
	Interest         decimal.Decimal
	TotalPayment     decimal.Decimal
	RemainingBalance decimal.Decimal
}

// ScheduleResult is the full schedule plus its aggregates.
type ScheduleResult struct {
	Rows []QuarterRow

	GraceQuarters           int
	AmortQuarters           int
	QuarterlyRate           decimal.Decimal
	PrincipalPerQuarter     decimal.Decimal
	GraceInterestPerQuarter decimal.Decimal

	TotalGraceInterest        decimal.Decimal
	TotalAmortizationInterest decimal.Decimal
	TotalInterest             decimal.Decimal
	TotalPayment              decimal.Decimal
	// Anualización plana del interés total, no es una TIR.
	EffectiveAnnualRate decimal.Decimal
}

// AccrueQuarter applies one amortization quarter to an open balance:
// interest accrues on the balance, then the fixed principal installment
// is subtracted. Residue below the epsilon clamps to zero so rounding
// noise never leaves a phantom balance.
func AccrueQuarter(balance, quarterlyRate, principalPayment decimal.Decimal) (interest, closing decimal.Decimal) {
	interest = balance.Mul(quarterlyRate)
	closing = balance.Sub(principalPayment)
	if closing.LessThan(balanceEpsilon) {
		closing = decimal.Zero
	}
	return interest, closing
}
