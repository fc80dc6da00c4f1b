package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordCommandAndOutcomes(t *testing.T) {
	m := NewMetrics("advgame")
	m.RecordCommand("DROP", ResultAccepted)
	m.RecordCommand("DROP", ResultAccepted)
	m.RecordCommand("DROP", ResultRejected)
	m.RecordOutcomes([]string{"item.dropped", "equip.unequipped", "item.dropped"})
	m.RecordCombatRound()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CommandsTotal.WithLabelValues("DROP", ResultAccepted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CommandsTotal.WithLabelValues("DROP", ResultRejected)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.OutcomesTotal.WithLabelValues("item.dropped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CombatRounds))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordCommand("QUIT", ResultAccepted)
		m.RecordOutcomes([]string{"system.quit"})
		m.RecordCombatRound()
	})
}

func TestMetrics_RegistryGathers(t *testing.T) {
	m := NewMetrics("test")
	m.RecordCombatRound()
	n, err := testutil.GatherAndCount(m.Registry, "test_combat_rounds_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}
