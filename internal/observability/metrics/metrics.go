// Package metrics registers the Prometheus instruments the scheduling
// engine exposes on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	BookingCommits    *prometheus.CounterVec
	SlotRequests      prometheus.Counter
	SlotCacheHits     prometheus.Counter
	CouponValidations *prometheus.CounterVec
	SyncRuns          *prometheus.CounterVec
	SyncDuration      *prometheus.HistogramVec
	ReleasedBookings  prometheus.Counter
	HTTPDuration      *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		BookingCommits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_commits_total",
			Help: "Booking commit attempts by outcome.",
		}, []string{"outcome"}),
		SlotRequests: factory.NewCounter(prometheus.CounterOpts{
			Name: "slot_requests_total",
			Help: "Slot listing requests.",
		}),
		SlotCacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "slot_cache_hits_total",
			Help: "Slot listing requests served from cache.",
		}),
		CouponValidations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "coupon_validations_total",
			Help: "Coupon validations by outcome.",
		}, []string{"outcome"}),
		SyncRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "calendar_sync_runs_total",
			Help: "Calendar sync runs by platform and outcome.",
		}, []string{"platform", "outcome"}),
		SyncDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "calendar_sync_duration_seconds",
			Help:    "Calendar sync duration by platform.",
			Buckets: prometheus.DefBuckets,
		}, []string{"platform"}),
		ReleasedBookings: factory.NewCounter(prometheus.CounterOpts{
			Name: "released_bookings_total",
			Help: "Pending bookings released by the reclaimer.",
		}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration by route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// NewDefault registers on the global registry used by promhttp.Handler.
func NewDefault() *Metrics {
	return New(prometheus.DefaultRegisterer)
}
