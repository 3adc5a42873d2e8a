package cli

import (
	"fmt"
	"io"

	"loan-amortizer/domain"
	"loan-amortizer/service"
)

type RateHandler struct {
	service     *service.RateSearchService
	explanation *service.ExplanationService
}

func NewRateHandler(
	service *service.RateSearchService,
	explanation *service.ExplanationService,
) *RateHandler {
	return &RateHandler{service: service, explanation: explanation}
}

// Run prompts for the inversion inputs and renders the found rate.
func (h *RateHandler) Run(p *Prompter, w io.Writer) error {
	fmt.Fprintln(w, "\n=== REVERSE ENGINEER RATE ===")

	principal, err := p.PromptDecimal("Enter loan amount (€): ")
	if err != nil {
		return err
	}

	totalMonths, err := p.PromptInt("Enter total months: ")
	if err != nil {
		return err
	}

	graceMonths, err := p.PromptInt("Enter grace months: ")
	if err != nil {
		return err
	}

	target, err := p.PromptDecimal("Enter actual total interest paid (€): ")
	if err != nil {
		return err
	}

	input := domain.RateSearchInput{
		Principal:      principal,
		TotalMonths:    totalMonths,
		GraceMonths:    graceMonths,
		TargetInterest: target,
	}

	result, err := h.service.FindRate(input)
	if err != nil {
		return err
	}

	renderRateSearch(w, input, result)
	fmt.Fprintf(w, "\n%s\n", h.explanation.ExplainRateSearch(input, result))

	return nil
}
