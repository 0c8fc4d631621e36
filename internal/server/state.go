package server

import (
	"context"
	"sync"
	"time"

	"idz2_roots/internal/solver"
)

// параметры запуска метода
type RunParams struct {
	Func    string   `json:"func"`
	A       float64  `json:"a"`
	B       float64  `json:"b"`
	Start   *float64 `json:"start,omitempty"`
	Eps     float64  `json:"eps"`     // абсолютная точность по x
	RelEps  float64  `json:"releps"`  // относительная точность по x
	FEps    float64  `json:"feps"`    // точность по значению функции
	Order   int      `json:"order"`   // максимальный порядок интерполяции
	MaxEval int      `json:"maxEval"` // лимит вычислений функции
	Side    string   `json:"side"`    // any | left | right | below | above
}

// состояние одного запуска
type RunState struct {
	ID        string
	Params    RunParams
	CreatedAt time.Time

	// предвычисленные значения функции для графика
	XS, YS []float64

	mu       sync.Mutex
	LastIter solver.Iter
	Iters    []solver.Iter
	Root     float64
	Evals    int
	Err      string
	Done     bool

	Cancel context.CancelFunc
}

// AddIter добавляет итерацию (вызывается из горутины решателя)
func (rs *RunState) AddIter(it solver.Iter) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.LastIter = it
	rs.Iters = append(rs.Iters, it)
}

// Snapshot — копия итераций и итогов для экспорта и графика
func (rs *RunState) Snapshot() (iters []solver.Iter, root float64, done bool) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	iters = append([]solver.Iter(nil), rs.Iters...)
	return iters, rs.Root, rs.Done
}

func (rs *RunState) finish(root float64, evals int) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.Root = root
	rs.Evals = evals
	rs.Done = true
}

func (rs *RunState) fail(msg string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.Err = msg
}

var (
	runsMu sync.Mutex
	runs   = map[string]*RunState{}
)

func saveRun(rs *RunState) {
	runsMu.Lock()
	defer runsMu.Unlock()
	runs[rs.ID] = rs
}

func getRun(id string) *RunState {
	runsMu.Lock()
	defer runsMu.Unlock()
	return runs[id]
}
