package metrics

import (
	"net/http"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry            *prometheus.Registry
	visitsRecorded      prometheus.Counter
	favoritesToggled    *prometheus.CounterVec
	persistenceFailures *prometheus.CounterVec
	hydratedItems       *prometheus.GaugeVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	visitsRecorded := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "toolmarks_visits_recorded_total",
		Help: "Total number of visits recorded in the recency log",
	})

	favoritesToggled := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "toolmarks_favorites_toggled_total",
		Help: "Total number of favorite toggles by resulting state",
	}, []string{"state"})

	persistenceFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "toolmarks_persistence_failures_total",
		Help: "Total number of swallowed storage failures by operation",
	}, []string{"op"})

	hydratedItems := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "toolmarks_hydrated_items",
		Help: "Number of items restored from storage at startup",
	}, []string{"component"})

	reg.MustRegister(visitsRecorded, favoritesToggled, persistenceFailures, hydratedItems)

	return &Metrics{
		registry:            reg,
		visitsRecorded:      visitsRecorded,
		favoritesToggled:    favoritesToggled,
		persistenceFailures: persistenceFailures,
		hydratedItems:       hydratedItems,
	}
}

func (m *Metrics) RecordVisit() {
	m.visitsRecorded.Inc()
}

func (m *Metrics) RecordToggle(added bool) {
	state := "removed"
	if added {
		state = "added"
	}
	m.favoritesToggled.WithLabelValues(state).Inc()
}

func (m *Metrics) RecordPersistenceFailure(op string) {
	m.persistenceFailures.WithLabelValues(op).Inc()
}

func (m *Metrics) RecordHydrated(component string, items int) {
	m.hydratedItems.WithLabelValues(component).Set(float64(items))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Values flattens every gathered sample into "name{label=value,...}" -> value.
func (m *Metrics) Values() (map[string]float64, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64)
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			var labels []string
			for _, lp := range metric.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			sort.Strings(labels)

			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}

			switch {
			case metric.GetCounter() != nil:
				out[name] = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				out[name] = metric.GetGauge().GetValue()
			}
		}
	}
	return out, nil
}

var (
	_ Observer = (*Metrics)(nil)
	_ Observer = NoopObserver{}
)
