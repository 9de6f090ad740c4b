package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/toolmarks/internal/metrics"
)

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestHandlerReturnsPrometheusFormat(t *testing.T) {
	m := metrics.New()
	m.RecordVisit()

	body := scrape(t, m)
	assert.Contains(t, body, "toolmarks_visits_recorded_total 1")
}

func TestRecordToggleLabelsState(t *testing.T) {
	m := metrics.New()
	m.RecordToggle(true)
	m.RecordToggle(true)
	m.RecordToggle(false)

	values, err := m.Values()
	require.NoError(t, err)
	assert.Equal(t, 2.0, values[`toolmarks_favorites_toggled_total{state=added}`])
	assert.Equal(t, 1.0, values[`toolmarks_favorites_toggled_total{state=removed}`])
}

func TestRecordPersistenceFailureAndHydrated(t *testing.T) {
	m := metrics.New()
	m.RecordPersistenceFailure("save")
	m.RecordHydrated("history", 7)

	values, err := m.Values()
	require.NoError(t, err)
	assert.Equal(t, 1.0, values[`toolmarks_persistence_failures_total{op=save}`])
	assert.Equal(t, 7.0, values[`toolmarks_hydrated_items{component=history}`])
}

func TestNoopObserverDoesNothing(t *testing.T) {
	var o metrics.Observer = metrics.NoopObserver{}
	o.RecordVisit()
	o.RecordToggle(true)
	o.RecordPersistenceFailure("save")
	o.RecordHydrated("favorites", 1)
}
