package repository

import "loan-amortizer/domain"

// HistoryRepository registra los cálculos de la sesión.
type HistoryRepository interface {
	Save(record domain.RunRecord) error
	All() []domain.RunRecord
}
