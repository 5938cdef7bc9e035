package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus collectors for the lending domain.
type Metrics struct {
	BookingsCreated prometheus.Counter
	BookingsDecided *prometheus.CounterVec
	CommentsCreated prometheus.Counter
	RuleViolations  *prometheus.CounterVec
}

// New registers the collectors on the given registerer. Pass
// prometheus.DefaultRegisterer in production; tests use a fresh registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		BookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "lending_bookings_created_total",
			Help: "Total number of bookings created",
		}),
		BookingsDecided: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lending_bookings_decided_total",
			Help: "Total number of booking approvals and rejections",
		}, []string{"decision"}),
		CommentsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "lending_comments_created_total",
			Help: "Total number of comments left on items",
		}),
		RuleViolations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lending_rule_violations_total",
			Help: "Total number of rejected requests by rule",
		}, []string{"rule"}),
	}
}
