package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startRun(t *testing.T, body string) map[string]any {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/start", strings.NewReader(body))
	w := httptest.NewRecorder()
	StartRun(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func waitDone(t *testing.T, id string) *RunState {
	t.Helper()
	rs := getRun(id)
	require.NotNil(t, rs)
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		rs.mu.Lock()
		done, errMsg := rs.Done, rs.Err
		rs.mu.Unlock()
		if done || errMsg != "" {
			return rs
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("запуск не завершился")
	return nil
}

func TestStartRunValidation(t *testing.T) {
	// только POST
	w := httptest.NewRecorder()
	StartRun(w, httptest.NewRequest(http.MethodGet, "/start", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	// битый JSON
	w = httptest.NewRecorder()
	StartRun(w, httptest.NewRequest(http.MethodPost, "/start", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// a >= b
	w = httptest.NewRecorder()
	StartRun(w, httptest.NewRequest(http.MethodPost, "/start",
		strings.NewReader(`{"func":"x","a":2,"b":1}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// ошибка в выражении
	w = httptest.NewRecorder()
	StartRun(w, httptest.NewRequest(http.MethodPost, "/start",
		strings.NewReader(`{"func":"x +* 1","a":0,"b":1}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// порядок меньше 2
	w = httptest.NewRecorder()
	StartRun(w, httptest.NewRequest(http.MethodPost, "/start",
		strings.NewReader(`{"func":"x","a":-1,"b":1,"order":1}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// неизвестная сторона
	w = httptest.NewRecorder()
	StartRun(w, httptest.NewRequest(http.MethodPost, "/start",
		strings.NewReader(`{"func":"x","a":-1,"b":1,"side":"middle"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartRunSolves(t *testing.T) {
	resp := startRun(t, `{"func":"x*x*x - x - 2","a":1,"b":2,"eps":1e-12}`)

	id, _ := resp["id"].(string)
	require.NotEmpty(t, id)
	assert.Len(t, resp["xs"], 400)
	assert.Len(t, resp["ys"], 400)

	rs := waitDone(t, id)
	rs.mu.Lock()
	defer rs.mu.Unlock()
	require.Empty(t, rs.Err)
	assert.InDelta(t, 1.5213797068045676, rs.Root, 1e-9)
	assert.Greater(t, rs.Evals, 0)
	assert.NotEmpty(t, rs.Iters)
}

func TestStartRunNoBracketing(t *testing.T) {
	resp := startRun(t, `{"func":"x*x + 1","a":1,"b":1.5}`)
	id, _ := resp["id"].(string)
	require.NotEmpty(t, id)

	rs := waitDone(t, id)
	rs.mu.Lock()
	defer rs.mu.Unlock()
	assert.Contains(t, rs.Err, "ошибка при вычислении")
	assert.False(t, rs.Done)
}

func TestExportCSV(t *testing.T) {
	resp := startRun(t, `{"func":"sin(x)","a":3,"b":4,"eps":1e-10}`)
	id, _ := resp["id"].(string)
	waitDone(t, id)

	w := httptest.NewRecorder()
	ExportCSV(w, httptest.NewRequest(http.MethodGet, "/export?id="+id, nil))
	require.Equal(t, http.StatusOK, w.Code)
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	assert.Equal(t, "k,a,b,x,f(x),b-a,win", lines[0])
	assert.Greater(t, len(lines), 1)

	// неизвестный id
	w = httptest.NewRecorder()
	ExportCSV(w, httptest.NewRequest(http.MethodGet, "/export?id=нет-такого", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStopRun(t *testing.T) {
	// без id
	w := httptest.NewRecorder()
	StopRun(w, httptest.NewRequest(http.MethodPost, "/stop", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// неизвестный id
	w = httptest.NewRecorder()
	StopRun(w, httptest.NewRequest(http.MethodPost, "/stop?id=нет-такого", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// нормальная остановка
	resp := startRun(t, `{"func":"x","a":-1,"b":2}`)
	id, _ := resp["id"].(string)
	w = httptest.NewRecorder()
	StopRun(w, httptest.NewRequest(http.MethodPost, "/stop?id="+id, nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestPlotPNG(t *testing.T) {
	resp := startRun(t, `{"func":"x*x - 2","a":0,"b":2}`)
	id, _ := resp["id"].(string)
	waitDone(t, id)

	w := httptest.NewRecorder()
	PlotPNG(w, httptest.NewRequest(http.MethodGet, "/plot?id="+id, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotZero(t, w.Body.Len())
}
