package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameDuelsChallenged    = "duels_challenged_total"
	MetricNameDuelsResolved      = "duels_resolved_total"
	MetricNameDuelsExpired       = "duels_expired_total"
	MetricNameDuelsDeclined      = "duels_declined_total"
	MetricNameDuelsCancelled     = "duels_cancelled_total"
	MetricNamePointsWagered      = "points_wagered_total"
	MetricNameSubscriptionsTotal = "subscriptions_total"
	MetricNameDonationsTotal     = "donations_total"
	MetricNameDonatedUSD         = "donated_usd_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextDuelsChallenged    = "Total number of duel challenges issued"
	HelpTextDuelsResolved      = "Total number of duels resolved with a winner"
	HelpTextDuelsExpired       = "Total number of duel challenges that expired"
	HelpTextDuelsDeclined      = "Total number of duel challenges declined"
	HelpTextDuelsCancelled     = "Total number of duel challenges cancelled"
	HelpTextPointsWagered      = "Total points paid out to duel winners"
	HelpTextSubscriptionsTotal = "Total number of subscription events processed"
	HelpTextDonationsTotal     = "Total number of donations processed"
	HelpTextDonatedUSD         = "Total donated amount in USD"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelTier   = "tier"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
