package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"loan-amortizer/domain"
)

type QuarterDetailService struct {
	limits Limits
}

func NewQuarterDetailService(limits Limits) *QuarterDetailService {
	return &QuarterDetailService{limits: limits}
}

// DetailQuarters expande los primeros trimestres de amortización con el
// saldo al inicio y al cierre de cada uno. Usa la misma recurrencia que
// el cronograma completo.
func (s *QuarterDetailService) DetailQuarters(
	input domain.QuarterDetailInput,
) (domain.QuarterDetailResult, error) {

	// Validaciones
	if input.Principal.LessThanOrEqual(decimal.Zero) {
		return domain.QuarterDetailResult{}, fmt.Errorf("%w: monto inválido", domain.ErrInvalidTerms)
	}
	if input.Principal.GreaterThan(s.limits.MaxPrincipal) {
		return domain.QuarterDetailResult{}, fmt.Errorf("%w: monto excede el máximo permitido de €%s",
			domain.ErrInvalidTerms, s.limits.MaxPrincipal.StringFixed(2))
	}
	if err := validateAnnualRate(input.AnnualRatePercent, s.limits); err != nil {
		return domain.QuarterDetailResult{}, err
	}
	if input.GraceQuarters < 0 {
		return domain.QuarterDetailResult{}, fmt.Errorf("%w: trimestres de gracia inválidos", domain.ErrInvalidTerms)
	}
	if input.AmortQuarters < 0 {
		return domain.QuarterDetailResult{}, fmt.Errorf("%w: trimestres de amortización inválidos", domain.ErrInvalidTerms)
	}
	if input.AmortQuarters == 0 {
		return domain.QuarterDetailResult{}, fmt.Errorf("%w: no hay trimestres de amortización", domain.ErrDivisionByZero)
	}
	if input.AmortQuarters > MaxTermMonths/MonthsPerQuarter {
		return domain.QuarterDetailResult{}, fmt.Errorf("%w: trimestres de amortización exceden el máximo de %d",
			domain.ErrInvalidTerms, MaxTermMonths/MonthsPerQuarter)
	}

	quarterlyRate := domain.QuarterlyRate(input.AnnualRatePercent)
	principalPerQuarter := input.Principal.Div(decimal.NewFromInt(int64(input.AmortQuarters)))

	shown := input.AmortQuarters
	if shown > DetailMaxQuarters {
		shown = DetailMaxQuarters
	}

	quarters := make([]domain.QuarterDetail, 0, shown)
	balance := input.Principal

	for q := 1; q <= shown; q++ {
		interest, closing := domain.AccrueQuarter(balance, quarterlyRate, principalPerQuarter)
		quarters = append(quarters, domain.QuarterDetail{
			Quarter:        q,
			BalanceAtStart: balance,
			Interest:       interest,
			Principal:      principalPerQuarter,
			TotalPayment:   principalPerQuarter.Add(interest),
			BalanceAtEnd:   closing,
		})
		balance = closing
	}

	return domain.QuarterDetailResult{
		QuarterlyRate:       quarterlyRate,
		PrincipalPerQuarter: principalPerQuarter,
		Quarters:            quarters,
	}, nil
}
