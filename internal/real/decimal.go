package real

import (
	"math"

	"github.com/govalues/decimal"
)

// Dec — реализация Real поверх десятичного типа github.com/govalues/decimal.
// Сам decimal.Decimal не умеет NaN: любая неудачная операция (переполнение,
// деление на ноль) помечает результат явным флагом nan. Сравнения с NaN
// дают false.
type Dec struct {
	v   decimal.Decimal
	nan bool
}

// ParseDec разбирает десятичное число из строки.
func ParseDec(s string) (Dec, error) {
	v, err := decimal.Parse(s)
	if err != nil {
		return Dec{}, err
	}
	return Dec{v: v}, nil
}

// MustDec — ParseDec с паникой; для констант в тестах и примерах.
func MustDec(s string) Dec {
	d, err := ParseDec(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DecFromInt строит Dec из целого.
func DecFromInt(n int64) Dec {
	return Dec{v: decimal.MustNew(n, 0)}
}

// DecFromFloat64 строит Dec из double; NaN и Inf дают NaN-значение.
func DecFromFloat64(f float64) Dec {
	v, err := decimal.NewFromFloat64(f)
	if err != nil {
		return Dec{nan: true}
	}
	return Dec{v: v}
}

func (a Dec) binary(b Dec, op func(decimal.Decimal, decimal.Decimal) (decimal.Decimal, error)) Dec {
	if a.nan || b.nan {
		return Dec{nan: true}
	}
	v, err := op(a.v, b.v)
	if err != nil {
		return Dec{nan: true}
	}
	return Dec{v: v}
}

func (a Dec) Add(b Dec) Dec { return a.binary(b, decimal.Decimal.Add) }
func (a Dec) Sub(b Dec) Dec { return a.binary(b, decimal.Decimal.Sub) }
func (a Dec) Mul(b Dec) Dec { return a.binary(b, decimal.Decimal.Mul) }
func (a Dec) Div(b Dec) Dec { return a.binary(b, decimal.Decimal.Quo) }

func (a Dec) DivInt(n int) Dec { return a.Div(DecFromInt(int64(n))) }

func (a Dec) Neg() Dec {
	if a.nan {
		return a
	}
	return Dec{v: a.v.Neg()}
}

func (a Dec) Abs() Dec {
	if a.nan {
		return a
	}
	return Dec{v: a.v.Abs()}
}

func (a Dec) IsZero() bool { return !a.nan && a.v.IsZero() }

func (a Dec) IsNaN() bool { return a.nan }

func (a Dec) LessThan(b Dec) bool {
	if a.nan || b.nan {
		return false
	}
	return a.v.Cmp(b.v) < 0
}

func (a Dec) NegativeOrNull() bool { return !a.nan && a.v.Sign() <= 0 }

func (Dec) Zero() Dec { return Dec{} }

func (Dec) NaN() Dec { return Dec{nan: true} }

func (a Dec) Float64() float64 {
	if a.nan {
		return math.NaN()
	}
	f, _ := a.v.Float64()
	return f
}

func (a Dec) String() string {
	if a.nan {
		return "NaN"
	}
	return a.v.String()
}
