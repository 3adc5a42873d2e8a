package service

import "github.com/shopspring/decimal"

const (
	MonthsPerQuarter = 3
	MonthsPerYear    = 12

	MaxTermMonths = 600 // 50 años

	// trimestres de amortización que muestra la vista detallada
	DetailMaxQuarters = 5

	// iteraciones máximas de la búsqueda por bisección
	RateSearchMaxIterations = 100
)

var (
	// tolerancia monetaria para dar por alcanzado el interés objetivo
	searchTolerance = decimal.NewFromFloat(0.01)

	two          = decimal.NewFromInt(2)
	oneHundred   = decimal.NewFromInt(100)
	monthsInYear = decimal.NewFromInt(MonthsPerYear)
)

// Limits acota los términos aceptados; viene de la configuración.
type Limits struct {
	MaxPrincipal         decimal.Decimal
	MaxAnnualRatePercent decimal.Decimal
}

// DefaultLimits returns the limits used when no configuration is loaded.
func DefaultLimits() Limits {
	return Limits{
		MaxPrincipal:         decimal.NewFromFloat(1_000_000_000.0), // 1 billón
		MaxAnnualRatePercent: decimal.NewFromFloat(100.0),
	}
}
