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

// Adventure Metrics
var (
	AdventuresStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAdventuresStarted,
			Help: HelpTextAdventuresStarted,
		},
		[]string{LabelKind},
	)

	AdventuresResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAdventuresResolved,
			Help: HelpTextAdventuresResolved,
		},
		[]string{LabelResult},
	)

	AdventuresExpired = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAdventuresExpired,
			Help: HelpTextAdventuresExpired,
		},
		[]string{LabelReason},
	)

	AdventuresActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameAdventuresActive,
			Help: HelpTextAdventuresActive,
		},
	)

	AdventureParticipants = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameAdventureParticipants,
			Help:    HelpTextAdventureParticipants,
			Buckets: ParticipantBuckets,
		},
	)

	CurrencyAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCurrencyAwarded,
			Help: HelpTextCurrencyAwarded,
		},
	)

	CurrencyPenalized = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCurrencyPenalized,
			Help: HelpTextCurrencyPenalized,
		},
	)

	ExperienceAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameExperienceAwarded,
			Help: HelpTextExperienceAwarded,
		},
	)

	ChestsAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameChestsAwarded,
			Help: HelpTextChestsAwarded,
		},
		[]string{LabelChest},
	)

	Crits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCrits,
			Help: HelpTextCrits,
		},
		[]string{LabelAction},
	)

	Fumbles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFumbles,
			Help: HelpTextFumbles,
		},
		[]string{LabelAction},
	)
)

// Character Metrics
var (
	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	Rebirths = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRebirths,
			Help: HelpTextRebirths,
		},
	)
)
