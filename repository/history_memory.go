package repository

import "loan-amortizer/domain"

// HistoryRepositoryMemory is an in-memory implementation of HistoryRepository.
type HistoryRepositoryMemory struct {
	records []domain.RunRecord
}

// NewHistoryRepositoryMemory creates a new in-memory history repository.
func NewHistoryRepositoryMemory() *HistoryRepositoryMemory {
	return &HistoryRepositoryMemory{
		records: []domain.RunRecord{},
	}
}

// Save appends the record to the session history.
func (r *HistoryRepositoryMemory) Save(record domain.RunRecord) error {
	r.records = append(r.records, record)
	return nil
}

// All returns the records in the order they were saved.
func (r *HistoryRepositoryMemory) All() []domain.RunRecord {
	return r.records
}
