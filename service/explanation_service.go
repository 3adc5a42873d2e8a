package service

import (
	"fmt"

	"loan-amortizer/domain"
)

// ExplanationService genera explicaciones deterministas en lenguaje llano
// para los resultados de los cálculos.
type ExplanationService struct{}

func NewExplanationService() *ExplanationService {
	return &ExplanationService{}
}

// ExplainSchedule resume el cronograma en un párrafo.
func (s *ExplanationService) ExplainSchedule(
	terms domain.LoanTerms,
	result domain.ScheduleResult,
) string {
	if result.GraceQuarters == 0 {
		return fmt.Sprintf(
			"Amortizarás €%s de capital cada trimestre durante %d trimestres, con intereses decrecientes sobre el saldo. En total pagarás €%s de intereses, equivalentes a una tasa anual efectiva de %s%%.",
			result.PrincipalPerQuarter.StringFixed(2), result.AmortQuarters,
			result.TotalInterest.StringFixed(2), result.EffectiveAnnualRate.StringFixed(2))
	}

	return fmt.Sprintf(
		"Durante los primeros %d trimestres pagarás solo intereses de €%s por trimestre. Después amortizarás €%s de capital cada trimestre durante %d trimestres, con intereses decrecientes sobre el saldo. En total pagarás €%s de intereses, equivalentes a una tasa anual efectiva de %s%%.",
		result.GraceQuarters, result.GraceInterestPerQuarter.StringFixed(2),
		result.PrincipalPerQuarter.StringFixed(2), result.AmortQuarters,
		result.TotalInterest.StringFixed(2), result.EffectiveAnnualRate.StringFixed(2))
}

// ExplainRateSearch resume el resultado de la búsqueda de tasa.
func (s *ExplanationService) ExplainRateSearch(
	input domain.RateSearchInput,
	result domain.RateSearchResult,
) string {
	return fmt.Sprintf(
		"Para acumular €%s de interés total sobre un préstamo de €%s se necesita una tasa nominal anual de %s%%. La búsqueda convergió en %d iteraciones con una diferencia de €%s.",
		input.TargetInterest.StringFixed(2), input.Principal.StringFixed(2),
		result.NominalAnnualRate.StringFixed(2), result.Iterations,
		result.Difference.StringFixed(4))
}
