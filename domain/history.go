package domain

// RunKind distingue qué cálculo produjo un registro de la sesión.
type RunKind string

const (
	RunSchedule   RunKind = "schedule"
	RunRateSearch RunKind = "rate_search"
)

// RunRecord is one line of the session history.
type RunRecord struct {
	Kind    RunKind
	Summary string
}
