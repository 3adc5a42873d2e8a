package cli

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"loan-amortizer/repository"
	"loan-amortizer/service"
)

func newTestSession(input string, out *bytes.Buffer) (*Session, *repository.HistoryRepositoryMemory) {
	history := repository.NewHistoryRepositoryMemory()
	cache := repository.NewMemoryCache()
	limits := service.DefaultLimits()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	amortization := service.NewAmortizationService(limits, history, cache, logger)
	detail := service.NewQuarterDetailService(limits)
	rateSearch := service.NewRateSearchService(limits, decimal.NewFromInt(50), history, logger)
	explanation := service.NewExplanationService()

	session := NewSession(
		strings.NewReader(input),
		out,
		NewScheduleHandler(amortization, explanation),
		NewDetailHandler(detail),
		NewRateHandler(rateSearch, explanation),
		history,
		logger,
	)
	return session, history
}

func TestSessionRun_FullFlow(t *testing.T) {

	input := strings.Join([]string{
		"120000", "24", "6", "6", // cronograma
		"y",
		"120000", "6", "2", "6", // detalle
		"y",
		"120000", "24", "6", "9900", // búsqueda de tasa
	}, "\n") + "\n"

	var out bytes.Buffer
	session, history := newTestSession(input, &out)

	session.Run()
	output := out.String()

	for _, fragment := range []string{
		"=== Loan Calculator: Grace Period + Equal Principal Installments ===",
		"=== LOAN STRUCTURE ===",
		"Total loan: €120,000.00",
		"Annual rate: 6%",
		"Quarterly rate: 1.5000%",
		"Principal per quarter: €20000.00",
		"GRACE PERIOD (Interest Only):",
		"AMORTIZATION PERIOD (Equal Principal + Interest):",
		"=== FINAL SUMMARY ===",
		"TOTAL INTEREST PAID: €9,900.00",
		"REAL effective annual rate: 4.13%",
		"=== VERIFICATION ===",
		"Principal payments: 6 × €20000.00 = €120000.00",
		"=== DETAILED QUARTER CALCULATION ===",
		"Quarter 3:",
		"Balance at start: €120000.00",
		"=== REVERSE ENGINEER RATE ===",
		"Nominal annual rate: 6.00%",
		"Effective annual rate: 4.13%",
		"=== SESSION SUMMARY ===",
		"- [schedule]",
		"- [rate_search]",
		"Goodbye!",
	} {
		if !strings.Contains(output, fragment) {
			t.Errorf("expected output to contain %q", fragment)
		}
	}

	if len(history.All()) != 2 {
		t.Errorf("expected 2 history records, got %d", len(history.All()))
	}
}

func TestSessionRun_SkipsOptionalFeatures(t *testing.T) {

	input := "120000\n24\n6\n6\nn\nn\n"

	var out bytes.Buffer
	session, history := newTestSession(input, &out)

	session.Run()
	output := out.String()

	if strings.Contains(output, "DETAILED QUARTER CALCULATION") {
		t.Error("expected the detail feature to be skipped")
	}
	if strings.Contains(output, "REVERSE ENGINEER RATE") {
		t.Error("expected the rate search feature to be skipped")
	}
	if !strings.Contains(output, "=== SESSION SUMMARY ===") {
		t.Error("expected the session summary with the schedule run")
	}
	if len(history.All()) != 1 {
		t.Errorf("expected 1 history record, got %d", len(history.All()))
	}
}

func TestSessionRun_RecoversFromInvalidInput(t *testing.T) {

	input := "abc\nn\nn\n"

	var out bytes.Buffer
	session, history := newTestSession(input, &out)

	session.Run()
	output := out.String()

	if !strings.Contains(output, "Error:") {
		t.Error("expected the error to be reported")
	}
	if !strings.Contains(output, "no es un número válido") {
		t.Errorf("expected the parse error message, got %q", output)
	}
	if strings.Contains(output, "=== SESSION SUMMARY ===") {
		t.Error("expected no summary when nothing was computed")
	}
	if !strings.Contains(output, "Goodbye!") {
		t.Error("expected the session to finish normally")
	}
	if len(history.All()) != 0 {
		t.Errorf("expected no history records, got %d", len(history.All()))
	}
}

func TestSessionRun_RateNotFoundDoesNotEndSession(t *testing.T) {

	// Objetivo inalcanzable dentro del bracket
	input := "120000\n24\n6\n6\nn\ny\n50000\n12\n0\n99999999\n"

	var out bytes.Buffer
	session, history := newTestSession(input, &out)

	session.Run()
	output := out.String()

	if !strings.Contains(output, "no se encontró una tasa") {
		t.Errorf("expected the rate not found error, got %q", output)
	}
	if !strings.Contains(output, "Goodbye!") {
		t.Error("expected the session to finish normally")
	}
	if !strings.Contains(output, "- [schedule]") {
		t.Error("expected the schedule run in the summary")
	}
	if strings.Contains(output, "- [rate_search]") {
		t.Error("expected no rate search record after a failed search")
	}
	if len(history.All()) != 1 {
		t.Errorf("expected 1 history record, got %d", len(history.All()))
	}
}

func TestSessionRun_EndOfInputSkipsConfirmations(t *testing.T) {

	input := "120000\n24\n6\n6\n"

	var out bytes.Buffer
	session, _ := newTestSession(input, &out)

	session.Run()
	output := out.String()

	if !strings.Contains(output, "=== FINAL SUMMARY ===") {
		t.Error("expected the schedule to be rendered")
	}
	if strings.Contains(output, "DETAILED QUARTER CALCULATION") {
		t.Error("expected the detail feature to be skipped on end of input")
	}
	if !strings.Contains(output, "Goodbye!") {
		t.Error("expected the session to finish normally")
	}
}
