package funcs

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/Knetic/govaluate"

	"idz2_roots/internal/real"
	"idz2_roots/internal/solver"
)

// запятая строго между цифрами — десятичный разделитель; запятые между
// аргументами функций (за ними пробел или не-цифра) остаются как есть
var decimalComma = regexp.MustCompile(`(\d),(\d)`)

// evalFunc — функция f(x) на основе govaluate
type evalFunc struct {
	expr   *govaluate.EvaluableExpression
	params map[string]interface{}
}

// NewEvalFunc создаёт вычислимую функцию по строке f(x)
func NewEvalFunc(expr string) (solver.Func[real.Float64], error) {
	fns := map[string]govaluate.ExpressionFunction{
		"sin": func(args ...interface{}) (interface{}, error) { return math.Sin(toFloat(args[0])), nil },
		"cos": func(args ...interface{}) (interface{}, error) { return math.Cos(toFloat(args[0])), nil },
		"tan": func(args ...interface{}) (interface{}, error) { return math.Tan(toFloat(args[0])), nil },
		"exp": func(args ...interface{}) (interface{}, error) { return math.Exp(toFloat(args[0])), nil },
		"log": func(args ...interface{}) (interface{}, error) { return math.Log(toFloat(args[0])), nil },
		"sqrt": func(args ...interface{}) (interface{}, error) {
			return math.Sqrt(toFloat(args[0])), nil
		},
		"abs": func(args ...interface{}) (interface{}, error) {
			return math.Abs(toFloat(args[0])), nil
		},
		"pow": func(args ...interface{}) (interface{}, error) {
			return math.Pow(toFloat(args[0]), toFloat(args[1])), nil
		},
	}

	// нормализуем запятые в десятичной записи
	expr = decimalComma.ReplaceAllString(expr, "$1.$2")

	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(expr, fns)
	if err != nil {
		return nil, err
	}

	return &evalFunc{
		expr:   parsed,
		params: map[string]interface{}{"x": 0.0},
	}, nil
}

func (f *evalFunc) Eval(x real.Float64) (real.Float64, error) {
	f.params["x"] = float64(x)
	v, err := f.expr.Evaluate(f.params)
	if err != nil {
		return x.NaN(), err
	}

	switch t := v.(type) {
	case float64:
		return real.Float64(t), nil
	case int:
		return real.Float64(t), nil
	case int64:
		return real.Float64(t), nil
	case string:
		parsed, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return x.NaN(), err
		}
		return real.Float64(parsed), nil
	default:
		return x.NaN(), fmt.Errorf("выражение не вернуло число: %T", v)
	}
}

func toFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		f, _ := strconv.ParseFloat(t, 64)
		return f
	default:
		return math.NaN()
	}
}
