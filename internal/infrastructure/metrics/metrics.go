package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "midnight_muse",
		Name:      "post_cache_requests_total",
		Help:      "Post cache lookups by kind (detail|list) and result (hit|miss).",
	}, []string{"kind", "result"})

	cacheLookupSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "midnight_muse",
		Name:      "post_cache_lookup_seconds",
		Help:      "Latency of post cache lookups.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
	}, []string{"result"})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "midnight_muse",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "midnight_muse",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	aiRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "midnight_muse",
		Name:      "ai_chat_requests_total",
		Help:      "AI chat calls by outcome.",
	}, []string{"outcome"})
)

func IncDetailHit()  { cacheRequests.WithLabelValues("detail", "hit").Inc() }
func IncDetailMiss() { cacheRequests.WithLabelValues("detail", "miss").Inc() }
func IncListHit()    { cacheRequests.WithLabelValues("list", "hit").Inc() }
func IncListMiss()   { cacheRequests.WithLabelValues("list", "miss").Inc() }

func AddHitDuration(seconds float64)  { cacheLookupSeconds.WithLabelValues("hit").Observe(seconds) }
func AddMissDuration(seconds float64) { cacheLookupSeconds.WithLabelValues("miss").Observe(seconds) }

// ObserveHTTP records one served request. route is the gin route template, not the raw path.
func ObserveHTTP(method, route, status string, seconds float64) {
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpDuration.WithLabelValues(method, route).Observe(seconds)
}

// IncAIRequest counts chat calls; outcome is "ok", "error" or "unavailable".
func IncAIRequest(outcome string) { aiRequests.WithLabelValues(outcome).Inc() }
