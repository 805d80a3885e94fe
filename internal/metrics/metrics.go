package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	DuelsChallenged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDuelsChallenged,
			Help: HelpTextDuelsChallenged,
		},
	)

	DuelsResolved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDuelsResolved,
			Help: HelpTextDuelsResolved,
		},
	)

	DuelsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDuelsExpired,
			Help: HelpTextDuelsExpired,
		},
	)

	DuelsDeclined = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDuelsDeclined,
			Help: HelpTextDuelsDeclined,
		},
	)

	DuelsCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDuelsCancelled,
			Help: HelpTextDuelsCancelled,
		},
	)

	PointsWagered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePointsWagered,
			Help: HelpTextPointsWagered,
		},
	)

	SubscriptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSubscriptionsTotal,
			Help: HelpTextSubscriptionsTotal,
		},
		[]string{LabelTier},
	)

	DonationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDonationsTotal,
			Help: HelpTextDonationsTotal,
		},
	)

	DonatedUSD = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDonatedUSD,
			Help: HelpTextDonatedUSD,
		},
	)
)
