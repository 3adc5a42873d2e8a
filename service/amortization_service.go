package service

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"loan-amortizer/domain"
	"loan-amortizer/repository"
)

type AmortizationService struct {
	limits  Limits
	history repository.HistoryRepository
	cache   repository.CacheRepository
	logger  *slog.Logger
}

// NewAmortizationService creates a new AmortizationService with the given
// history repository and cache backend.
func NewAmortizationService(
	limits Limits,
	history repository.HistoryRepository,
	cache repository.CacheRepository,
	logger *slog.Logger,
) *AmortizationService {
	return &AmortizationService{
		limits:  limits,
		history: history,
		cache:   cache,
		logger:  logger,
	}
}

// GenerateSchedule builds the full quarterly schedule for the terms:
// interest-only grace quarters followed by equal-principal quarters.
func (s *AmortizationService) GenerateSchedule(
	terms domain.LoanTerms,
) (domain.ScheduleResult, error) {

	// Validar entrada
	if err := validateTermStructure(terms.Principal, terms.TotalMonths, terms.GraceMonths, s.limits); err != nil {
		return domain.ScheduleResult{}, err
	}
	if err := validateAnnualRate(terms.AnnualRatePercent, s.limits); err != nil {
		return domain.ScheduleResult{}, err
	}

	cacheKey := scheduleCacheKey(terms)
	result, cached := s.cachedSchedule(cacheKey)
	if !cached {
		result = buildSchedule(terms)

		if raw, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(cacheKey, string(raw)); err != nil {
				s.logger.Warn("failed to cache schedule", "error", err)
			}
		}
	}

	// Guardar el registro de la sesión (no crítico si falla)
	record := domain.RunRecord{
		Kind: domain.RunSchedule,
		Summary: fmt.Sprintf("préstamo de €%s a %d meses (gracia %d) al %s%%: interés total €%s",
			terms.Principal.StringFixed(2), terms.TotalMonths, terms.GraceMonths,
			terms.AnnualRatePercent.StringFixed(2), result.TotalInterest.StringFixed(2)),
	}
	if err := s.history.Save(record); err != nil {
		s.logger.Warn("failed to save schedule run", "error", err)
	}

	return result, nil
}

func (s *AmortizationService) cachedSchedule(key string) (domain.ScheduleResult, bool) {
	raw, ok := s.cache.Get(key)
	if !ok {
		return domain.ScheduleResult{}, false
	}

	var result domain.ScheduleResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		s.logger.Warn("discarding malformed cache entry", "key", key)
		return domain.ScheduleResult{}, false
	}
	return result, true
}

// buildSchedule corre la recurrencia trimestral completa. Los términos ya
// están validados.
func buildSchedule(terms domain.LoanTerms) domain.ScheduleResult {
	graceQuarters := terms.GraceQuarters()
	amortQuarters := terms.AmortQuarters()
	quarterlyRate := terms.QuarterlyRate()

	principalPerQuarter := terms.Principal.Div(decimal.NewFromInt(int64(amortQuarters)))
	graceInterestPerQuarter := terms.Principal.Mul(quarterlyRate)
	totalGraceInterest := graceInterestPerQuarter.Mul(decimal.NewFromInt(int64(graceQuarters)))

	rows := make([]domain.QuarterRow, 0, graceQuarters+amortQuarters)

	for q := 1; q <= graceQuarters; q++ {
		rows = append(rows, domain.QuarterRow{
			Quarter:          q,
			Phase:            domain.PhaseGrace,
			Principal:        decimal.Zero,
			Interest:         graceInterestPerQuarter,
			TotalPayment:     graceInterestPerQuarter,
			RemainingBalance: terms.Principal,
		})
	}

	balance := terms.Principal
	totalAmortInterest := decimal.Zero

	for q := 0; q < amortQuarters; q++ {
		interest, closing := domain.AccrueQuarter(balance, quarterlyRate, principalPerQuarter)
		rows = append(rows, domain.QuarterRow{
			Quarter:          graceQuarters + q + 1,
			Phase:            domain.PhaseAmortization,
			Principal:        principalPerQuarter,
			Interest:         interest,
			TotalPayment:     principalPerQuarter.Add(interest),
			RemainingBalance: closing,
		})
		totalAmortInterest = totalAmortInterest.Add(interest)
		balance = closing
	}

	totalInterest := totalGraceInterest.Add(totalAmortInterest)

	return domain.ScheduleResult{
		Rows:                      rows,
		GraceQuarters:             graceQuarters,
		AmortQuarters:             amortQuarters,
		QuarterlyRate:             quarterlyRate,
		PrincipalPerQuarter:       principalPerQuarter,
		GraceInterestPerQuarter:   graceInterestPerQuarter,
		TotalGraceInterest:        totalGraceInterest,
		TotalAmortizationInterest: totalAmortInterest,
		TotalInterest:             totalInterest,
		TotalPayment:              terms.Principal.Add(totalInterest),
		EffectiveAnnualRate:       effectiveAnnualRate(totalInterest, terms.Principal, terms.TotalMonths),
	}
}

// effectiveAnnualRate anualiza el interés total de forma plana.
func effectiveAnnualRate(totalInterest, principal decimal.Decimal, totalMonths int) decimal.Decimal {
	years := decimal.NewFromInt(int64(totalMonths)).Div(monthsInYear)
	return totalInterest.Div(principal).Div(years).Mul(oneHundred)
}

// validateTermStructure valida monto y plazos, compartidos por la
// generación de cronogramas y la búsqueda de tasa.
func validateTermStructure(principal decimal.Decimal, totalMonths, graceMonths int, limits Limits) error {
	if principal.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: monto inválido", domain.ErrInvalidTerms)
	}
	if principal.GreaterThan(limits.MaxPrincipal) {
		return fmt.Errorf("%w: monto excede el máximo permitido de €%s", domain.ErrInvalidTerms, limits.MaxPrincipal.StringFixed(2))
	}
	if totalMonths <= 0 {
		return fmt.Errorf("%w: plazo inválido", domain.ErrInvalidTerms)
	}
	if totalMonths > MaxTermMonths {
		return fmt.Errorf("%w: plazo excede el máximo permitido de %d meses", domain.ErrInvalidTerms, MaxTermMonths)
	}
	if graceMonths < 0 {
		return fmt.Errorf("%w: periodo de gracia inválido", domain.ErrInvalidTerms)
	}
	if graceMonths >= totalMonths {
		return fmt.Errorf("%w: el periodo de gracia debe ser menor al plazo total", domain.ErrInvalidTerms)
	}
	// Menos de un trimestre completo de amortización dividiría el
	// capital entre cero.
	if (totalMonths-graceMonths)/MonthsPerQuarter == 0 {
		return fmt.Errorf("%w: no hay trimestres de amortización", domain.ErrDivisionByZero)
	}
	if graceMonths%MonthsPerQuarter != 0 || (totalMonths-graceMonths)%MonthsPerQuarter != 0 {
		return fmt.Errorf("%w: los plazos deben estar alineados a trimestres completos", domain.ErrInvalidTerms)
	}
	return nil
}

func validateAnnualRate(annualRatePercent decimal.Decimal, limits Limits) error {
	if annualRatePercent.IsNegative() {
		return fmt.Errorf("%w: tasa inválida", domain.ErrInvalidTerms)
	}
	if annualRatePercent.GreaterThan(limits.MaxAnnualRatePercent) {
		return fmt.Errorf("%w: tasa excede el máximo permitido de %s%%", domain.ErrInvalidTerms, limits.MaxAnnualRatePercent.StringFixed(2))
	}
	return nil
}

func scheduleCacheKey(terms domain.LoanTerms) string {
	return fmt.Sprintf("schedule:%s:%s:%d:%d",
		terms.Principal.String(), terms.AnnualRatePercent.String(), terms.TotalMonths, terms.GraceMonths)
}
