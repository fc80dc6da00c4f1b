package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Command results recorded in CommandsTotal.
const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
	ResultFatal    = "fatal"
)

// Metrics holds the game's prometheus counters on a private registry. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	CommandsTotal *prometheus.CounterVec
	OutcomesTotal *prometheus.CounterVec
	CombatRounds  prometheus.Counter
}

// NewMetrics registers the counters under namespace on a fresh registry.
//
// Postcondition: every counter is registered on the returned Registry.
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		CommandsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Commands processed, by verb and result.",
		}, []string{"verb", "result"}),
		OutcomesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outcomes_total",
			Help:      "Outcome records produced, by kind.",
		}, []string{"kind"}),
		CombatRounds: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "combat_rounds_total",
			Help:      "Attack rounds resolved, including spell strikes.",
		}),
	}
}

// RecordCommand counts one processed command.
func (m *Metrics) RecordCommand(verb, result string) {
	if m == nil {
		return
	}
	m.CommandsTotal.WithLabelValues(verb, result).Inc()
}

// RecordOutcomes counts each outcome kind.
func (m *Metrics) RecordOutcomes(kinds []string) {
	if m == nil {
		return
	}
	for _, k := range kinds {
		m.OutcomesTotal.WithLabelValues(k).Inc()
	}
}

// RecordCombatRound counts one resolved round.
func (m *Metrics) RecordCombatRound() {
	if m == nil {
		return
	}
	m.CombatRounds.Inc()
}
