package solver

import (
	"errors"
	"fmt"
)

// ErrStopped — специальная ошибка для принудительной остановки через callback
var ErrStopped = errors.New("solver: stopped by callback")

// ErrNilFunction — в Solve не передали функцию
var ErrNilFunction = errors.New("solver: function is nil")

// ErrInternal — недостижимая ветка выбора стороны решения
var ErrInternal = errors.New("solver: internal error, unknown allowed solution")

// ConfigError — недопустимые параметры конструктора решателя
type ConfigError struct {
	MaximalOrder int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("solver: maximal order %d is too small, need at least 2", e.MaximalOrder)
}

// NoBracketingError — функция не меняет знак на переданном интервале
type NoBracketingError struct {
	Lo, Hi   float64
	YLo, YHi float64
}

func (e *NoBracketingError) Error() string {
	return fmt.Sprintf("solver: function values at endpoints do not have different signs: f(%g)=%g, f(%g)=%g",
		e.Lo, e.YLo, e.Hi, e.YHi)
}

// BudgetError — превышен лимит на число вычислений функции
type BudgetError struct {
	MaxEvaluations int
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("solver: maximal number of evaluations (%d) exceeded", e.MaxEvaluations)
}
