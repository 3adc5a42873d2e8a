package repository

import (
	"testing"

	"loan-amortizer/domain"
)

func TestHistoryRepositoryMemory_SaveAndAll(t *testing.T) {

	repo := NewHistoryRepositoryMemory()

	if len(repo.All()) != 0 {
		t.Fatalf("expected empty history, got %d records", len(repo.All()))
	}

	first := domain.RunRecord{Kind: domain.RunSchedule, Summary: "préstamo de €120000.00 a 24 meses"}
	second := domain.RunRecord{Kind: domain.RunRateSearch, Summary: "interés objetivo €9900.00"}

	if err := repo.Save(first); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := repo.Save(second); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	records := repo.All()
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Kind != domain.RunSchedule || records[0].Summary != first.Summary {
		t.Errorf("expected the schedule record first, got %+v", records[0])
	}
	if records[1].Kind != domain.RunRateSearch {
		t.Errorf("expected the rate search record second, got %+v", records[1])
	}
}
