package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentHandlerUsesPattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /api/v1/goals/{goalId}/progress", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	handler := InstrumentHandler(mux)

	before := counterValue(httpRequests.WithLabelValues("PATCH", "/api/v1/goals/{goalId}/progress", "404"))

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/goals/abc/progress", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	after := counterValue(httpRequests.WithLabelValues("PATCH", "/api/v1/goals/{goalId}/progress", "404"))
	assert.Equal(t, before+1, after)
}

func TestRecordWriteAndFailure(t *testing.T) {
	before := counterValue(recordsWritten.WithLabelValues("mood", "updated"))
	RecordWrite("mood", "updated")
	assert.Equal(t, before+1, counterValue(recordsWritten.WithLabelValues("mood", "updated")))

	beforeFail := counterValue(failures.WithLabelValues("not_found"))
	RecordFailure("not_found")
	assert.Equal(t, beforeFail+1, counterValue(failures.WithLabelValues("not_found")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	RecordWrite("goal", "created")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthjournal_records_writes_total")
}

func TestRouteLabel(t *testing.T) {
	assert.Equal(t, "unmatched", routeLabel(""))
	assert.Equal(t, "/health", routeLabel("GET /health"))
	assert.Equal(t, "/api/v1/goals", routeLabel("/api/v1/goals"))
}

func counterValue(c prometheus.Counter) float64 {
	m := &dto.Metric{}
	if err := c.Write(m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}
