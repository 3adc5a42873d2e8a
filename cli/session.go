package cli

import (
	"fmt"
	"io"
	"log/slog"

	"loan-amortizer/repository"
)

// Session encadena las funciones de la calculadora con confirmaciones
// y/n. El fallo de una función se reporta y la sesión continúa.
type Session struct {
	prompter *Prompter
	out      io.Writer
	schedule *ScheduleHandler
	detail   *DetailHandler
	rate     *RateHandler
	history  repository.HistoryRepository
	logger   *slog.Logger
}

func NewSession(
	in io.Reader,
	out io.Writer,
	schedule *ScheduleHandler,
	detail *DetailHandler,
	rate *RateHandler,
	history repository.HistoryRepository,
	logger *slog.Logger,
) *Session {
	return &Session{
		prompter: NewPrompter(in, out),
		out:      out,
		schedule: schedule,
		detail:   detail,
		rate:     rate,
		history:  history,
		logger:   logger,
	}
}

// Run drives one interactive session from start to finish.
func (s *Session) Run() {
	fmt.Fprintln(s.out, "=== Loan Calculator: Grace Period + Equal Principal Installments ===")
	fmt.Fprintln(s.out)

	s.runFeature("schedule", s.schedule.Run)

	if s.prompter.PromptYesNo("\nShow detailed quarter calculations? (y/n): ") {
		s.runFeature("quarter_detail", s.detail.Run)
	}

	if s.prompter.PromptYesNo("\nReverse-engineer the rate from total interest? (y/n): ") {
		s.runFeature("rate_search", s.rate.Run)
	}

	s.renderRecap()

	fmt.Fprintln(s.out, "\nGoodbye!")
}

func (s *Session) runFeature(name string, run func(*Prompter, io.Writer) error) {
	if err := run(s.prompter, s.out); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		s.logger.Error("feature failed", "feature", name, "error", err)
	}
}

func (s *Session) renderRecap() {
	records := s.history.All()
	if len(records) == 0 {
		return
	}

	fmt.Fprintln(s.out, "\n=== SESSION SUMMARY ===")
	for _, record := range records {
		fmt.Fprintf(s.out, "- [%s] %s\n", record.Kind, record.Summary)
	}
}
