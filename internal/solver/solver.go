package solver

import (
	"idz2_roots/internal/real"
)

// maximalAging — после скольких итераций без замены конца интервала
// пытаемся выровнять брекетинг
const maximalAging = 2

// Func — интерфейс для абстрактной функции f(x)
type Func[T real.Real[T]] interface {
	Eval(x T) (T, error)
}

// Fn — обычная go-функция как Func
type Fn[T real.Real[T]] func(x T) (T, error)

func (f Fn[T]) Eval(x T) (T, error) { return f(x) }

// Solver — брекетинг-метод Брента n-го порядка: гарантированный интервал
// со сменой знака сужается догадками обратной полиномиальной интерполяции
// переменного порядка, с откатом к бисекции.
type Solver[T real.Real[T]] struct {
	maximalOrder          int
	relativeAccuracy      T
	absoluteAccuracy      T
	functionValueAccuracy T

	// OnIter вызывается после каждой итерации поиска; если вернёт
	// ErrStopped — алгоритм прерывается.
	OnIter func(Iter) error

	evaluations Incrementor
}

// New создаёт решатель; maximalOrder должен быть не меньше 2.
func New[T real.Real[T]](relativeAccuracy, absoluteAccuracy, functionValueAccuracy T, maximalOrder int) (*Solver[T], error) {
	if maximalOrder < 2 {
		return nil, &ConfigError{MaximalOrder: maximalOrder}
	}
	return &Solver[T]{
		maximalOrder:          maximalOrder,
		relativeAccuracy:      relativeAccuracy,
		absoluteAccuracy:      absoluteAccuracy,
		functionValueAccuracy: functionValueAccuracy,
	}, nil
}

// MaximalOrder — максимальный порядок интерполяции.
func (s *Solver[T]) MaximalOrder() int { return s.maximalOrder }

// MaxEvaluations — лимит вычислений последнего вызова Solve.
func (s *Solver[T]) MaxEvaluations() int { return s.evaluations.MaximalCount() }

// Evaluations — сколько вычислений израсходовал последний вызов Solve
// (0, если Solve ещё не вызывался).
func (s *Solver[T]) Evaluations() int { return s.evaluations.Count() }

func (s *Solver[T]) RelativeAccuracy() T { return s.relativeAccuracy }

func (s *Solver[T]) AbsoluteAccuracy() T { return s.absoluteAccuracy }

func (s *Solver[T]) FunctionValueAccuracy() T { return s.functionValueAccuracy }

// Solve ищет корень на [min, max], стартуя из середины интервала.
func (s *Solver[T]) Solve(maxEval int, f Func[T], min, max T, allowed AllowedSolution) (T, error) {
	return s.SolveFrom(maxEval, f, min, max, min.Add(max).DivInt(2), allowed)
}

// SolveFrom ищет корень на [min, max], стартуя из startValue.
// Интервал обязан содержать смену знака функции; точный ноль в любой
// из пробных точек возвращается сразу, без учёта allowed.
func (s *Solver[T]) SolveFrom(maxEval int, f Func[T], min, max, startValue T, allowed AllowedSolution) (T, error) {
	var none T
	if f == nil {
		return none, ErrNilFunction
	}

	// сброс счётчика под новый запуск
	s.evaluations = Incrementor{max: maxEval}
	eval := func(v T) (T, error) {
		if err := s.evaluations.Increment(); err != nil {
			return none, err
		}
		return f.Eval(v)
	}

	zero := startValue.Zero()
	nan := startValue.NaN()

	// окно выборки: первые точки
	x := make([]T, s.maximalOrder+1)
	y := make([]T, s.maximalOrder+1)
	x[0] = min
	x[1] = startValue
	x[2] = max

	// стартовая точка
	var err error
	y[1], err = eval(x[1])
	if err != nil {
		return none, err
	}
	if y[1].IsZero() {
		return x[1], nil
	}

	// левый конец
	y[0], err = eval(x[0])
	if err != nil {
		return none, err
	}
	if y[0].IsZero() {
		return x[0], nil
	}

	var nbPoints, signChangeIndex int
	if oppositeSigns(y[0], y[1]) {

		// корень уже между min и startValue
		nbPoints = 2
		signChangeIndex = 1

	} else {

		// правый конец
		y[2], err = eval(x[2])
		if err != nil {
			return none, err
		}
		if y[2].IsZero() {
			return x[2], nil
		}

		if oppositeSigns(y[1], y[2]) {
			// все три точки идут в стартовое окно
			nbPoints = 3
			signChangeIndex = 2
		} else {
			return none, &NoBracketingError{
				Lo: x[0].Float64(), Hi: x[2].Float64(),
				YLo: y[0].Float64(), YHi: y[2].Float64(),
			}
		}

	}

	// рабочий массив для обратной интерполяции
	tmpX := make([]T, len(x))

	// самый узкий известный интервал со сменой знака
	xA := x[signChangeIndex-1]
	yA := y[signChangeIndex-1]
	absYA := yA.Abs()
	agingA := 0
	xB := x[signChangeIndex]
	yB := y[signChangeIndex]
	absYB := yB.Abs()
	agingB := 0

	for k := 1; ; k++ {

		// проверка сходимости интервала
		absXA := xA.Abs()
		absXB := xB.Abs()
		maxX := absXA
		if absXA.LessThan(absXB) {
			maxX = absXB
		}
		maxY := absYA
		if absYA.LessThan(absYB) {
			maxY = absYB
		}
		xTol := s.absoluteAccuracy.Add(s.relativeAccuracy.Mul(maxX))
		if xB.Sub(xA).Sub(xTol).NegativeOrNull() || maxY.LessThan(s.functionValueAccuracy) {
			switch allowed {
			case AnySide:
				if absYA.LessThan(absYB) {
					return xA, nil
				}
				return xB, nil
			case LeftSide:
				return xA, nil
			case RightSide:
				return xB, nil
			case BelowSide:
				if yA.LessThan(zero) {
					return xA, nil
				}
				return xB, nil
			case AboveSide:
				if yA.LessThan(zero) {
					return xB, nil
				}
				return xA, nil
			default:
				// сюда попадать не должны
				return none, ErrInternal
			}
		}

		// целевая ордината: при застое одного из концов смещаем цель
		// к нему, иначе целимся в сам корень
		var targetY T
		if agingA >= maximalAging {
			targetY = yB.DivInt(16).Neg()
		} else if agingB >= maximalAging {
			targetY = yA.DivInt(16).Neg()
		} else {
			targetY = zero
		}

		// несколько попыток угадать корень, понижая порядок,
		// пока догадка не попадёт строго внутрь (xA, xB)
		var nextX T
		start := 0
		end := nbPoints
		for {

			copy(tmpX[start:end], x[start:end])
			nextX = guessX(targetY, tmpX, y, start, end)

			if !(xA.LessThan(nextX) && nextX.LessThan(xB)) {
				// догадка вне интервала либо NaN (часть точек делит
				// одну ординату) — выбрасываем точку с той стороны,
				// где их больше, и пробуем с меньшим порядком
				if signChangeIndex-start >= end-signChangeIndex {
					start++
				} else {
					end--
				}
				nextX = nan
			}

			if !(nextX.IsNaN() && end-start > 1) {
				break
			}
		}

		// win — сколько точек окна дало принятую догадку
		win := end - start
		if nextX.IsNaN() {
			// откат к бисекции: шаг опирается на пару концов интервала
			nextX = xA.Add(xB.Sub(xA).DivInt(2))
			start = signChangeIndex - 1
			end = signChangeIndex
			win = 2
		}

		// значение функции в догадке
		nextY, err := eval(nextX)
		if err != nil {
			return none, err
		}
		if nextY.IsZero() {
			// точный корень, а не приближение: allowed не имеет значения
			return nextX, nil
		}

		if nbPoints > 2 && end-start != nbPoints {

			// часть точек пришлось игнорировать — они, видимо, далеко
			// от корня, выбрасываем их насовсем
			nbPoints = end - start
			copy(x, x[start:start+nbPoints])
			copy(y, y[start:start+nbPoints])
			signChangeIndex -= start

		} else if nbPoints == len(x) {

			// окно полно — освобождаем место под новую точку
			nbPoints--

			// держим интервал со сменой знака как можно ближе к центру
			if signChangeIndex >= (len(x)+1)/2 {
				copy(x, x[1:1+nbPoints])
				copy(y, y[1:1+nbPoints])
				signChangeIndex--
			}

		}

		// вставляем новую точку (по построению она внутри (xA, xB))
		copy(x[signChangeIndex+1:nbPoints+1], x[signChangeIndex:nbPoints])
		x[signChangeIndex] = nextX
		copy(y[signChangeIndex+1:nbPoints+1], y[signChangeIndex:nbPoints])
		y[signChangeIndex] = nextY
		nbPoints++

		// обновляем брекетинг-интервал
		if oppositeSigns(nextY, yA) {
			// смена знака до вставленной точки
			xB = nextX
			yB = nextY
			absYB = yB.Abs()
			agingA++
			agingB = 0
		} else {
			// смена знака после вставленной точки
			xA = nextX
			yA = nextY
			absYA = yA.Abs()
			agingA = 0
			agingB++
			signChangeIndex++
		}

		if s.OnIter != nil {
			it := Iter{
				K:   k,
				XA:  xA.Float64(),
				XB:  xB.Float64(),
				X:   nextX.Float64(),
				FX:  nextY.Float64(),
				Len: xB.Sub(xA).Float64(),
				Win: win,
			}
			if err := s.OnIter(it); err != nil {
				return none, err
			}
		}

	}

}

// oppositeSigns — смена знака по знакам самих ординат. Произведение для
// этого не годится: произведение двух крошечных чисел одного знака
// округляется в ноль (денормализация double, округление decimal) и ложно
// засчитывается как смена знака. Точные нули к этому моменту уже
// возвращены из Solve, NaN знака не имеет.
func oppositeSigns[T real.Real[T]](a, b T) bool {
	return !a.IsNaN() && !b.IsNaN() && a.NegativeOrNull() != b.NegativeOrNull()
}

// guessX — догадка о корне обратной полиномиальной интерполяцией.
// Строится полином Q(y), такой что Q(y_i) = x_i для всех точек окна
// (коэффициенты Ньютона по разделённым разностям считаются на месте
// в массиве x), и вычисляется Q(targetY). При совпадающих ординатах
// результат не число — это штатный сигнал для понижения порядка.
func guessX[T real.Real[T]](targetY T, x, y []T, start, end int) T {

	// коэффициенты Q по разделённым разностям
	for i := start; i < end-1; i++ {
		delta := i + 1 - start
		for j := end - 1; j > i; j-- {
			x[j] = x[j].Sub(x[j-1]).Div(y[j].Sub(y[j-delta]))
		}
	}

	// вычисляем Q(targetY) по схеме Горнера
	x0 := targetY.Zero()
	for j := end - 1; j >= start; j-- {
		x0 = x[j].Add(x0.Mul(targetY.Sub(y[j])))
	}

	return x0
}
