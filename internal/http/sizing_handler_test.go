package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vladmu/tire-calculator/internal/model"
	"github.com/vladmu/tire-calculator/internal/repository"
	"github.com/vladmu/tire-calculator/internal/service"
)

func newTestHandler() *SizingHandler {
	return NewSizingHandler(service.NewSizingService(repository.NewMemoryCache(0)))
}

func TestCalculateHandler_OK(t *testing.T) {
	handler := newTestHandler()

	body := []byte(`{"rim": 17, "width": 225, "profile": 45}`)
	req := httptest.NewRequest(http.MethodPost, "/sizes/calculate", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Calculate(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var res model.Results
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "225/45 R17", res.InitialSizeKey)
	require.NotNil(t, res.BestMain)
	assert.Equal(t, "245/25 R20", res.BestMain.Size)
	assert.Nil(t, res.BestAlternative)
}

func TestCalculateHandler_NoRecommendation(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/sizes/calculate",
		bytes.NewBufferString(`{"rim": 12, "width": 100, "profile": 60}`))
	w := httptest.NewRecorder()
	handler.Calculate(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Equal(t, []interface{}{}, raw["main"])
	assert.NotContains(t, raw, "best_main")
	assert.NotContains(t, raw, "best_alternative")
}

func TestCalculateHandler_MethodNotAllowed(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/sizes/calculate", nil)
	w := httptest.NewRecorder()

	handler.Calculate(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestCalculateHandler_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{invalid-json}`},
		{"rim out of range", `{"rim": 26, "width": 225, "profile": 45}`},
		{"profile too low", `{"rim": 17, "width": 225, "profile": 15}`},
		{"not a step multiple", `{"rim": 17, "width": 226, "profile": 45}`},
		{"fractional rim", `{"rim": 17.5, "width": 225, "profile": 45}`},
	}

	handler := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/sizes/calculate", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Calculate(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestCalculateHandler_BodyTooLarge(t *testing.T) {
	body := `{"rim": 17, "width": 225, "profile": 45` + strings.Repeat(" ", 2*maxBodyBytes) + `}`
	req := httptest.NewRequest(http.MethodPost, "/sizes/calculate", strings.NewReader(body))
	w := httptest.NewRecorder()
	newTestHandler().Calculate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for oversized body, got %d", w.Code)
	}
}

func TestLimitsHandler(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/sizes/limits", nil)
	w := httptest.NewRecorder()
	handler.Limits(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var rows []model.LimitRow
	require.NoError(t, json.NewDecoder(w.Body).Decode(&rows))
	require.Len(t, rows, model.RimCount)
	assert.Equal(t, model.LimitRow{
		Rim: 25,
		Min: model.LimitPair{Width: 245, Profile: 20},
		Max: model.LimitPair{Width: 355, Profile: 35},
	}, rows[len(rows)-1])

	req = httptest.NewRequest(http.MethodPost, "/sizes/limits", nil)
	w = httptest.NewRecorder()
	handler.Limits(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouter_RateLimited(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)
	defer limiter.Stop()
	router := NewRouter(newTestHandler(), limiter)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/sizes/limits", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// A different client has its own bucket.
	req := httptest.NewRequest(http.MethodGet, "/sizes/limits", nil)
	req.RemoteAddr = "10.0.0.2:5000"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
