package real

import (
	"math"
	"strconv"
)

// Real — набор операций над вещественным числом, который нужен решателю.
// Тип параметризован сам собой, чтобы операции возвращали конкретный тип,
// а не интерфейс.
type Real[T any] interface {
	Add(other T) T
	Sub(other T) T
	Mul(other T) T
	Div(other T) T
	DivInt(n int) T
	Neg() T
	Abs() T

	IsZero() bool
	IsNaN() bool
	LessThan(other T) bool
	// NegativeOrNull — проверка "<= 0"; для NaN всегда false.
	NegativeOrNull() bool

	Zero() T
	NaN() T

	// Float64 — приближение машинным double (для сообщений и графиков).
	Float64() float64
	String() string
}

// Float64 — реализация Real поверх аппаратного double.
type Float64 float64

func (a Float64) Add(b Float64) Float64 { return a + b }
func (a Float64) Sub(b Float64) Float64 { return a - b }
func (a Float64) Mul(b Float64) Float64 { return a * b }
func (a Float64) Div(b Float64) Float64 { return a / b }

func (a Float64) DivInt(n int) Float64 { return a / Float64(n) }

func (a Float64) Neg() Float64 { return -a }

func (a Float64) Abs() Float64 { return Float64(math.Abs(float64(a))) }

func (a Float64) IsZero() bool { return a == 0 }

func (a Float64) IsNaN() bool { return math.IsNaN(float64(a)) }

// сравнения с NaN дают false — стандартная семантика IEEE 754
func (a Float64) LessThan(b Float64) bool { return a < b }

func (a Float64) NegativeOrNull() bool { return a <= 0 }

func (Float64) Zero() Float64 { return 0 }

func (Float64) NaN() Float64 { return Float64(math.NaN()) }

func (a Float64) Float64() float64 { return float64(a) }

func (a Float64) String() string {
	return strconv.FormatFloat(float64(a), 'g', 16, 64)
}
