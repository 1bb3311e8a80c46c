package observability

import (
	"context"
	"strconv"

	"github.com/aretw0/samuel/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts rule usage across every puzzle that shares the hooks.
type Metrics struct {
	conditions *prometheus.CounterVec
	skipped    *prometheus.CounterVec
	applied    *prometheus.CounterVec
	stages     *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		conditions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "samuel_conditions_matched_total",
				Help: "Number of times a rule condition was the first to match",
			},
			[]string{"colour", "rule"},
		),
		skipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "samuel_rules_skipped_total",
				Help: "Number of times a rule was skipped because it already ran this stage",
			},
			[]string{"colour", "rule"},
		),
		applied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "samuel_rules_applied_total",
				Help: "Number of rule actions applied",
			},
			[]string{"colour", "rule"},
		),
		stages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "samuel_stages_solved_total",
				Help: "Number of stages whose expected submission was computed",
			},
			[]string{"stage"},
		),
	}

	for _, c := range []prometheus.Collector{m.conditions, m.skipped, m.applied, m.stages} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns engine callbacks that record into m.
func (m *Metrics) Hooks() domain.RuleHooks {
	rule := func(vec *prometheus.CounterVec) func(context.Context, *domain.TraceEvent) {
		return func(_ context.Context, e *domain.TraceEvent) {
			vec.WithLabelValues(e.Colour.String(), strconv.Itoa(e.Rule)).Inc()
		}
	}
	return domain.RuleHooks{
		OnRuleMatched: rule(m.conditions),
		OnRuleSkipped: rule(m.skipped),
		OnRuleApplied: rule(m.applied),
		OnPositionSelected: func(_ context.Context, e *domain.TraceEvent) {
			m.stages.WithLabelValues(strconv.Itoa(e.Stage)).Inc()
		},
	}
}
