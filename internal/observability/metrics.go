package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SearchesTotal counts /search calls by outcome: ok, empty, error.
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matchmaker_searches_total",
			Help: "Total project searches by outcome",
		},
		[]string{"outcome"},
	)

	SearchCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matchmaker_search_candidates",
			Help:    "Candidates returned by the store per search, before ranking",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		},
	)

	// DistrictLookupFailures counts district reads that were swallowed.
	DistrictLookupFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matchmaker_district_lookup_failures_total",
			Help: "District list reads that failed and returned an empty list",
		},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matchmaker_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "status"},
	)
)
