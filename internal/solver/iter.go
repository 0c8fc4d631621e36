package solver

// Iter — одна итерация основного цикла поиска (значения приближены к double
// для JSON и графиков)
type Iter struct {
	K   int     `json:"k"`
	XA  float64 `json:"a"`
	XB  float64 `json:"b"`
	X   float64 `json:"x"`
	FX  float64 `json:"fx"`
	Len float64 `json:"len"`
	// Win — сколько точек окна участвовало в принятой догадке
	Win int `json:"win"`
}
