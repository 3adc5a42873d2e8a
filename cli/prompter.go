package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"loan-amortizer/domain"
)

// Prompter lee respuestas validadas de la entrada interactiva.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// PromptDecimal asks for a decimal number. Parse failures come back as
// ErrInvalidInput; there is no retry.
func (p *Prompter) PromptDecimal(label string) (decimal.Decimal, error) {
	fmt.Fprint(p.out, label)

	line, err := p.readLine()
	if err != nil {
		return decimal.Decimal{}, err
	}

	value, err := decimal.NewFromString(line)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q no es un número válido", domain.ErrInvalidInput, line)
	}
	return value, nil
}

// PromptInt asks for a whole number.
func (p *Prompter) PromptInt(label string) (int, error) {
	fmt.Fprint(p.out, label)

	line, err := p.readLine()
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q no es un número entero válido", domain.ErrInvalidInput, line)
	}
	return value, nil
}

// PromptYesNo asks a y/n question; anything other than y/yes counts as no.
func (p *Prompter) PromptYesNo(label string) bool {
	fmt.Fprint(p.out, label)

	line, err := p.readLine()
	if err != nil {
		return false
	}

	answer := strings.ToLower(line)
	return answer == "y" || answer == "yes"
}

func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		return "", fmt.Errorf("%w: fin de la entrada", domain.ErrInvalidInput)
	}
	return strings.TrimSpace(p.in.Text()), nil
}
