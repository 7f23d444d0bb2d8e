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

// Adventure metric names
const (
	MetricNameAdventuresStarted     = "adventures_started_total"
	MetricNameAdventuresResolved    = "adventures_resolved_total"
	MetricNameAdventuresExpired     = "adventures_expired_total"
	MetricNameAdventuresActive      = "adventures_active"
	MetricNameAdventureParticipants = "adventure_participants"
	MetricNameCurrencyAwarded       = "currency_awarded_total"
	MetricNameCurrencyPenalized     = "currency_penalized_total"
	MetricNameExperienceAwarded     = "experience_awarded_total"
	MetricNameChestsAwarded         = "chests_awarded_total"
	MetricNameCrits                 = "adventure_crits_total"
	MetricNameFumbles               = "adventure_fumbles_total"
	MetricNameLevelUps              = "character_level_ups_total"
	MetricNameRebirths              = "character_rebirths_total"
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

// Adventure metric help text
const (
	HelpTextAdventuresStarted     = "Total number of adventures started"
	HelpTextAdventuresResolved    = "Total number of adventures resolved, by result"
	HelpTextAdventuresExpired     = "Total number of adventures removed without resolving"
	HelpTextAdventuresActive      = "Adventures currently open or resolving"
	HelpTextAdventureParticipants = "Participants per resolved adventure"
	HelpTextCurrencyAwarded       = "Total currency credited by adventures"
	HelpTextCurrencyPenalized     = "Total currency debited as failure penalties"
	HelpTextExperienceAwarded     = "Total experience credited by adventures"
	HelpTextChestsAwarded         = "Total treasure chests awarded, by chest type"
	HelpTextCrits                 = "Total critical rolls by action"
	HelpTextFumbles               = "Total fumbled rolls by action"
	HelpTextLevelUps              = "Total level-up events"
	HelpTextRebirths              = "Total rebirths"
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
	LabelKind   = "kind"
	LabelResult = "result"
	LabelReason = "reason"
	LabelAction = "action"
	LabelChest  = "chest"
)

// Monster kinds
const (
	KindNormal   = "normal"
	KindMiniboss = "miniboss"
	KindBoss     = "boss"
)

// Resolution results
const (
	ResultSlain     = "slain"
	ResultPersuaded = "persuaded"
	ResultFailed    = "failed"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ParticipantBuckets covers solo runs up to large group raids
var ParticipantBuckets = []float64{1, 2, 3, 5, 8, 13, 21, 34, 55}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
