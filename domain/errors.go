package domain

import "errors"

// Errores compartidos por los servicios de cálculo.
var (
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrInvalidTerms   = errors.New("términos del préstamo inválidos")
	ErrDivisionByZero = errors.New("división por cero")
	ErrRateNotFound   = errors.New("no se encontró una tasa para el interés objetivo")
)
