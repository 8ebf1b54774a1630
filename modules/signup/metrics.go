package signup

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/signup/pkg/registration"
)

const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
)

// Metrics counts validation outcomes. Values never carry user input; only
// endpoint names, field names and error kinds are used as labels.
type Metrics struct {
	submissions *prometheus.CounterVec
	fieldErrors *prometheus.CounterVec
}

// NewMetrics registers the signup collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		submissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "signup_submissions_total",
				Help: "Registration records validated, by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		fieldErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "signup_field_errors_total",
				Help: "Failed rules, by field and error kind",
			},
			[]string{"field", "kind"},
		),
	}
}

func (m *Metrics) observe(endpoint string, res registration.Result) {
	if m == nil {
		return
	}
	if res.Valid() {
		m.submissions.WithLabelValues(endpoint, OutcomeValid).Inc()
		return
	}
	m.submissions.WithLabelValues(endpoint, OutcomeInvalid).Inc()
	for _, issue := range res.Issues() {
		m.fieldErrors.WithLabelValues(issue.Field, string(issue.Kind)).Inc()
	}
}
