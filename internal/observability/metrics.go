package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "site_http_requests_total",
		Help: "HTTP requests served, by route pattern and status code.",
	}, []string{"route", "status"})

	filterResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "site_article_filter_results",
		Help:    "Number of articles in a filtered view.",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
	})

	filterEnabledTags = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "site_article_filter_enabled_tags",
		Help:    "Number of enabled tags per filtered view.",
		Buckets: []float64{0, 1, 2, 3, 5},
	})

	contentReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "site_content_reloads_total",
		Help: "Content store reloads triggered by file changes, by result.",
	}, []string{"result"})
)

// ObserveRequest records a served request.
func ObserveRequest(route string, status int) {
	httpRequestsTotal.WithLabelValues(SanitizeRoute(route), strconv.Itoa(status)).Inc()
}

// ObserveFilter records the size of a filtered view and how many tags produced it.
func ObserveFilter(enabledTags, results int) {
	filterEnabledTags.Observe(float64(enabledTags))
	filterResults.Observe(float64(results))
}

// ObserveReload records a content reload outcome ("ok" or "error").
func ObserveReload(result string) {
	contentReloads.WithLabelValues(result).Inc()
}
