package server

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"idz2_roots/internal/chart"
	"idz2_roots/internal/funcs"
	"idz2_roots/internal/real"
	"idz2_roots/internal/solver"
)

// StartRun запускает новый процесс поиска корня
func StartRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "только POST", http.StatusMethodNotAllowed)
		return
	}

	var p RunParams
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "ошибка JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if p.MaxEval <= 0 {
		p.MaxEval = cfg.Defaults.MaxEval
	}
	if p.Eps <= 0 {
		p.Eps = cfg.Defaults.Eps
	}
	if p.RelEps < 0 {
		p.RelEps = 0
	}
	if p.FEps <= 0 {
		p.FEps = cfg.Defaults.FEps
	}
	if p.Order == 0 {
		p.Order = cfg.Defaults.Order
	}
	if !(p.A < p.B) {
		http.Error(w, "требуется a < b", http.StatusBadRequest)
		return
	}
	if p.Start != nil && !(p.A < *p.Start && *p.Start < p.B) {
		http.Error(w, "требуется a < start < b", http.StatusBadRequest)
		return
	}

	side, ok := solver.ParseAllowedSolution(p.Side)
	if !ok {
		http.Error(w, "неизвестная сторона решения: "+p.Side, http.StatusBadRequest)
		return
	}

	f, err := funcs.NewEvalFunc(p.Func)
	if err != nil {
		http.Error(w, "ошибка в выражении функции: "+err.Error(), http.StatusBadRequest)
		return
	}

	sol, err := solver.New(
		real.Float64(p.RelEps),
		real.Float64(p.Eps),
		real.Float64(p.FEps),
		p.Order,
	)
	if err != nil {
		http.Error(w, "ошибка в параметрах метода: "+err.Error(), http.StatusBadRequest)
		return
	}

	// предварительно считаем значения функции для графика
	const n = 400
	xs := make([]float64, n)
	ys := make([]float64, n)
	h := (p.B - p.A) / float64(n-1)
	for i := 0; i < n; i++ {
		x := p.A + float64(i)*h
		y, err := f.Eval(real.Float64(x))
		fy := y.Float64()
		if err != nil || math.IsNaN(fy) || math.IsInf(fy, 0) {
			fy = math.NaN()
		}
		xs[i], ys[i] = x, fy
	}

	id := uuid.NewString()
	ctx, cancel := context.WithCancel(context.Background())
	rs := &RunState{
		ID:        id,
		Params:    p,
		CreatedAt: time.Now(),
		XS:        xs,
		YS:        ys,
		Cancel:    cancel,
	}
	saveRun(rs)

	// асинхронный запуск поиска корня
	go func() {
		// стартовое событие
		startMsg, _ := json.Marshal(map[string]any{
			"type": "start",
			"id":   id,
		})
		hub.Publish(id, string(startMsg))

		sol.OnIter = func(it solver.Iter) error {
			select {
			case <-ctx.Done():
				return solver.ErrStopped
			default:
			}

			rs.AddIter(it)

			payload := map[string]any{
				"type": "iter",
				"iter": it,
			}
			msg, _ := json.Marshal(payload)
			hub.Publish(id, string(msg))
			return nil
		}

		var root real.Float64
		var solveErr error
		minV, maxV := real.Float64(p.A), real.Float64(p.B)
		if p.Start != nil {
			root, solveErr = sol.SolveFrom(p.MaxEval, f, minV, maxV, real.Float64(*p.Start), side)
		} else {
			root, solveErr = sol.Solve(p.MaxEval, f, minV, maxV, side)
		}

		if solveErr != nil {
			if errors.Is(solveErr, solver.ErrStopped) || errors.Is(solveErr, context.Canceled) {
				stopMsg, _ := json.Marshal(map[string]any{
					"type": "stopped",
				})
				hub.Publish(id, string(stopMsg))
				return
			}

			rs.fail("ошибка при вычислении: " + solveErr.Error())
			errMsg, _ := json.Marshal(map[string]any{
				"type": "error",
				"err":  "ошибка при вычислении: " + solveErr.Error(),
			})
			hub.Publish(id, string(errMsg))
			return
		}

		rs.finish(root.Float64(), sol.Evaluations())

		doneMsg, _ := json.Marshal(map[string]any{
			"type":  "done",
			"x":     root.Float64(),
			"evals": sol.Evaluations(),
		})
		hub.Publish(id, string(doneMsg))
	}()

	resp := map[string]any{
		"id": id,
		"xs": xs,
		"ys": ys,
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// StopRun — прерывание процесса поиска
func StopRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "только POST", http.StatusMethodNotAllowed)
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "требуется id", http.StatusBadRequest)
		return
	}

	rs := getRun(id)
	if rs == nil {
		http.Error(w, "неизвестный id", http.StatusNotFound)
		return
	}

	if rs.Cancel != nil {
		rs.Cancel()
	}

	w.WriteHeader(http.StatusNoContent)
}

// ExportCSV — экспорт итераций в CSV
func ExportCSV(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "требуется id", http.StatusBadRequest)
		return
	}

	rs := getRun(id)
	if rs == nil {
		http.Error(w, "неизвестный id", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=iterations_"+id+".csv")

	cw := csv.NewWriter(w)
	defer cw.Flush()

	_ = cw.Write([]string{"k", "a", "b", "x", "f(x)", "b-a", "win"})

	iters, _, _ := rs.Snapshot()
	for _, it := range iters {
		_ = cw.Write([]string{
			strconv.Itoa(it.K),
			fmtFloat(it.XA),
			fmtFloat(it.XB),
			fmtFloat(it.X),
			fmtFloat(it.FX),
			fmtFloat(it.Len),
			strconv.Itoa(it.Win),
		})
	}
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 16, 64)
}

// PlotPNG — график функции и пробных точек в PNG
func PlotPNG(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "требуется id", http.StatusBadRequest)
		return
	}

	rs := getRun(id)
	if rs == nil {
		http.Error(w, "неизвестный id", http.StatusNotFound)
		return
	}

	iters, root, done := rs.Snapshot()
	if !done {
		root = math.NaN()
	}

	w.Header().Set("Content-Type", "image/png")
	if err := chart.Convergence(w, rs.Params.Func, rs.XS, rs.YS, iters, root); err != nil {
		http.Error(w, "ошибка построения графика: "+err.Error(), http.StatusInternalServerError)
	}
}

// Stream — SSE-стрим итераций
func Stream(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "требуется id", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	ch, cancel := hub.Subscribe(id)
	defer cancel()

	ctx := r.Context()

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-ch:
			fmt.Fprintf(w, "event: msg\n")
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}
