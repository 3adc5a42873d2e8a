package cli

import (
	"fmt"
	"io"

	"loan-amortizer/domain"
	"loan-amortizer/service"
)

type ScheduleHandler struct {
	service     *service.AmortizationService
	explanation *service.ExplanationService
}

func NewScheduleHandler(
	service *service.AmortizationService,
	explanation *service.ExplanationService,
) *ScheduleHandler {
	return &ScheduleHandler{service: service, explanation: explanation}
}

// Run prompts for the loan terms, generates the schedule and renders it.
func (h *ScheduleHandler) Run(p *Prompter, w io.Writer) error {
	principal, err := p.PromptDecimal("Enter the loan amount (€): ")
	if err != nil {
		return err
	}

	totalMonths, err := p.PromptInt("Enter total loan period (months): ")
	if err != nil {
		return err
	}

	annualRate, err := p.PromptDecimal("Enter the nominal annual interest rate (%): ")
	if err != nil {
		return err
	}

	graceMonths, err := p.PromptInt("Enter grace period in months (so 12 is 1 year) (interest-only): ")
	if err != nil {
		return err
	}

	terms := domain.LoanTerms{
		Principal:         principal,
		AnnualRatePercent: annualRate,
		TotalMonths:       totalMonths,
		GraceMonths:       graceMonths,
	}

	result, err := h.service.GenerateSchedule(terms)
	if err != nil {
		return err
	}

	renderSchedule(w, terms, result)
	fmt.Fprintf(w, "\n%s\n", h.explanation.ExplainSchedule(terms, result))

	return nil
}
