package cli

import (
	"fmt"
	"io"

	"loan-amortizer/domain"
	"loan-amortizer/service"
)

type DetailHandler struct {
	service *service.QuarterDetailService
}

func NewDetailHandler(service *service.QuarterDetailService) *DetailHandler {
	return &DetailHandler{service: service}
}

// Run prompts for the raw quarter scalars and renders the expanded view.
func (h *DetailHandler) Run(p *Prompter, w io.Writer) error {
	fmt.Fprintln(w, "\n=== DETAILED QUARTER CALCULATION ===")

	principal, err := p.PromptDecimal("Enter loan amount (€): ")
	if err != nil {
		return err
	}

	annualRate, err := p.PromptDecimal("Enter annual rate (%): ")
	if err != nil {
		return err
	}

	graceQuarters, err := p.PromptInt("Enter grace quarters: ")
	if err != nil {
		return err
	}

	amortQuarters, err := p.PromptInt("Enter amortization quarters: ")
	if err != nil {
		return err
	}

	input := domain.QuarterDetailInput{
		Principal:         principal,
		AnnualRatePercent: annualRate,
		GraceQuarters:     graceQuarters,
		AmortQuarters:     amortQuarters,
	}

	result, err := h.service.DetailQuarters(input)
	if err != nil {
		return err
	}

	renderDetail(w, input, result)

	return nil
}
