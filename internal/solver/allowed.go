package solver

// AllowedSolution — какую сторону сошедшегося интервала вернуть как ответ.
type AllowedSolution int

const (
	// AnySide — конец с меньшим |f(x)|
	AnySide AllowedSolution = iota
	// LeftSide — левый конец интервала
	LeftSide
	// RightSide — правый конец интервала
	RightSide
	// BelowSide — конец, где f(x) <= 0
	BelowSide
	// AboveSide — конец, где f(x) >= 0
	AboveSide
)

func (a AllowedSolution) String() string {
	switch a {
	case AnySide:
		return "any"
	case LeftSide:
		return "left"
	case RightSide:
		return "right"
	case BelowSide:
		return "below"
	case AboveSide:
		return "above"
	default:
		return "unknown"
	}
}

// ParseAllowedSolution разбирает сторону из строки (для HTTP-параметров и CLI).
func ParseAllowedSolution(s string) (AllowedSolution, bool) {
	switch s {
	case "", "any":
		return AnySide, true
	case "left":
		return LeftSide, true
	case "right":
		return RightSide, true
	case "below":
		return BelowSide, true
	case "above":
		return AboveSide, true
	default:
		return AnySide, false
	}
}
