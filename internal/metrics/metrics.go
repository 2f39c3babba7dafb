// file: internal/metrics/metrics.go
// version: 2.0.0
// guid: 9f8e7d6c-5b4a-3210-9fed-cba876543210

package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "wordbook"

var (
	registerOnce sync.Once

	registrations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "word_registrations_total",
		Help:      "Word registrations by outcome (created, linked, conflict, bad_request, error)",
	}, []string{"outcome"})
	removals = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "word_removals_total",
		Help:      "User word removals by outcome",
	}, []string{"outcome"})
	suggestions = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "suggestions_total",
		Help:      "Total number of suggestion queries served",
	})
	suggestionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "suggestion_duration_seconds",
		Help:      "Histogram of candidate collection plus ranking time",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms up to ~4s
	})
	generations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ai_generations_total",
		Help:      "AI entry generations by outcome (ok, error, disabled)",
	}, []string{"outcome"})
	generationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ai_generation_duration_seconds",
		Help:      "Histogram of upstream AI call latency",
		Buckets:   prometheus.ExponentialBuckets(0.1, 1.6, 12),
	})
	cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ai_cache_lookups_total",
		Help:      "AI generation cache lookups by result (hit, miss)",
	}, []string{"result"})

	wordsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "words_total",
		Help:      "Current number of shared word entries",
	})
	usersGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "users_total",
		Help:      "Current number of registered users",
	})
	goroutinesGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "process_goroutines",
		Help:      "Number of currently running goroutines",
	})
)

// Register initializes metrics with the global Prometheus registry (idempotent)
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(registrations, removals, suggestions, suggestionDuration,
			generations, generationDuration, cacheLookups,
			wordsGauge, usersGauge, goroutinesGauge)
	})
}

// Word lifecycle helpers
func IncRegistration(outcome string) { registrations.WithLabelValues(outcome).Inc() }
func IncRemoval(outcome string)      { removals.WithLabelValues(outcome).Inc() }

func ObserveSuggestion(d time.Duration) {
	suggestions.Inc()
	suggestionDuration.Observe(d.Seconds())
}

// AI helpers
func IncGeneration(outcome string) { generations.WithLabelValues(outcome).Inc() }
func ObserveGenerationDuration(d time.Duration) {
	generationDuration.Observe(d.Seconds())
}
func IncCacheHit()  { cacheLookups.WithLabelValues("hit").Inc() }
func IncCacheMiss() { cacheLookups.WithLabelValues("miss").Inc() }

// Gauges
func SetWords(n int)      { wordsGauge.Set(float64(n)) }
func SetUsers(n int)      { usersGauge.Set(float64(n)) }
func SetGoroutines(n int) { goroutinesGauge.Set(float64(n)) }
