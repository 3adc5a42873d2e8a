package service

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"loan-amortizer/domain"
	"loan-amortizer/repository"
)

type RateSearchService struct {
	limits         Limits
	maxRatePercent decimal.Decimal
	history        repository.HistoryRepository
	logger         *slog.Logger
}

// NewRateSearchService creates a new RateSearchService. maxRatePercent is
// the upper end of the bisection bracket, in annual percent.
func NewRateSearchService(
	limits Limits,
	maxRatePercent decimal.Decimal,
	history repository.HistoryRepository,
	logger *slog.Logger,
) *RateSearchService {
	return &RateSearchService{
		limits:         limits,
		maxRatePercent: maxRatePercent,
		history:        history,
		logger:         logger,
	}
}

// FindRate busca por bisección la tasa nominal anual cuyo interés total
// coincide con el objetivo dentro de la tolerancia monetaria. El interés
// total es monótono no decreciente en la tasa.
func (s *RateSearchService) FindRate(
	input domain.RateSearchInput,
) (domain.RateSearchResult, error) {

	if err := validateTermStructure(input.Principal, input.TotalMonths, input.GraceMonths, s.limits); err != nil {
		return domain.RateSearchResult{}, err
	}

	graceQuarters := input.GraceMonths / MonthsPerQuarter
	amortQuarters := (input.TotalMonths - input.GraceMonths) / MonthsPerQuarter
	principalPerQuarter := input.Principal.Div(decimal.NewFromInt(int64(amortQuarters)))

	low := decimal.Zero
	high := s.maxRatePercent

	best := decimal.Zero
	bestDiff := decimal.Zero

	for i := 0; i < RateSearchMaxIterations; i++ {
		mid := low.Add(high).Div(two)

		grace, amort := interestForRate(input.Principal, principalPerQuarter, mid, graceQuarters, amortQuarters)
		total := grace.Add(amort)
		diff := total.Sub(input.TargetInterest).Abs()

		if i == 0 || diff.LessThan(bestDiff) {
			best = mid
			bestDiff = diff
		}

		if diff.LessThan(searchTolerance) {
			result := domain.RateSearchResult{
				NominalAnnualRate:    mid,
				EffectiveAnnualRate:  effectiveAnnualRate(input.TargetInterest, input.Principal, input.TotalMonths),
				GraceInterest:        grace,
				AmortizationInterest: amort,
				TotalInterest:        total,
				Difference:           diff,
				Iterations:           i + 1,
			}

			s.logger.Info("rate search converged",
				"rate", mid.StringFixed(4), "iterations", i+1)

			// Guardar el registro de la sesión (no crítico si falla)
			record := domain.RunRecord{
				Kind: domain.RunRateSearch,
				Summary: fmt.Sprintf("interés objetivo €%s sobre €%s: tasa nominal %s%% en %d iteraciones",
					input.TargetInterest.StringFixed(2), input.Principal.StringFixed(2),
					mid.StringFixed(2), i+1),
			}
			if err := s.history.Save(record); err != nil {
				s.logger.Warn("failed to save rate search run", "error", err)
			}

			return result, nil
		}

		if total.LessThan(input.TargetInterest) {
			low = mid
		} else {
			high = mid
		}
	}

	return domain.RateSearchResult{}, fmt.Errorf(
		"%w: sin convergencia tras %d iteraciones, mejor aproximación %s%% con diferencia de €%s",
		domain.ErrRateNotFound, RateSearchMaxIterations, best.StringFixed(2), bestDiff.StringFixed(2))
}

// interestForRate recalcula solo los agregados de interés para una tasa
// candidata, sin materializar filas del cronograma.
func interestForRate(
	principal, principalPerQuarter, annualRatePercent decimal.Decimal,
	graceQuarters, amortQuarters int,
) (graceInterest, amortInterest decimal.Decimal) {

	quarterlyRate := domain.QuarterlyRate(annualRatePercent)
	graceInterest = principal.Mul(quarterlyRate).Mul(decimal.NewFromInt(int64(graceQuarters)))

	balance := principal
	amortInterest = decimal.Zero

	for q := 0; q < amortQuarters; q++ {
		interest, closing := domain.AccrueQuarter(balance, quarterlyRate, principalPerQuarter)
		amortInterest = amortInterest.Add(interest)
		balance = closing
	}

	return graceInterest, amortInterest
}
