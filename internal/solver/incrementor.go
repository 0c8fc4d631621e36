package solver

// Incrementor — счётчик вычислений функции с жёстким лимитом.
// Increment возвращает BudgetError, как только лимит был бы превышен.
type Incrementor struct {
	count int
	max   int
}

// NewIncrementor создаёт счётчик с лимитом max.
func NewIncrementor(max int) *Incrementor {
	return &Incrementor{max: max}
}

func (inc *Incrementor) Increment() error {
	if inc.count+1 > inc.max {
		return &BudgetError{MaxEvaluations: inc.max}
	}
	inc.count++
	return nil
}

// Count — сколько вычислений уже израсходовано.
func (inc *Incrementor) Count() int { return inc.count }

// MaximalCount — установленный лимит.
func (inc *Incrementor) MaximalCount() int { return inc.max }
