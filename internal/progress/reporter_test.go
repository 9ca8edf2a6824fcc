package progress

import (
	"io"
	"log/slog"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findFamily(families []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, fam := range families {
		if fam.GetName() == name {
			return fam
		}
	}
	return nil
}

func newTestReporter() *Reporter {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewReporter(logger, "")
}

func TestReporter_TallyByOutcome(t *testing.T) {
	r := newTestReporter()

	r.Observe("category", OutcomeInserted)
	r.Observe("category", OutcomeInserted)
	r.Observe("category", OutcomeUpdated)
	r.Observe("discount", OutcomeSkipped)

	assert.Equal(t, 2, r.Tally(OutcomeInserted))
	assert.Equal(t, 1, r.Tally(OutcomeUpdated))
	assert.Equal(t, 1, r.Tally(OutcomeSkipped))
}

func TestReporter_MetricsGathered(t *testing.T) {
	r := newTestReporter()

	r.Observe("category", OutcomeInserted)
	r.UnitDone("catalog", 1500*time.Millisecond)

	families, err := r.Gatherer().Gather()
	require.NoError(t, err)

	entities := findFamily(families, "seeder_entities_total")
	require.NotNil(t, entities)
	require.Len(t, entities.GetMetric(), 1)
	assert.Equal(t, float64(1), entities.GetMetric()[0].GetCounter().GetValue())

	units := findFamily(families, "seeder_unit_duration_seconds")
	require.NotNil(t, units)
	assert.Equal(t, 1.5, units.GetMetric()[0].GetGauge().GetValue())
}

func TestReporter_PushDisabledWithoutURL(t *testing.T) {
	r := newTestReporter()
	assert.NoError(t, r.Push(t.Context()))
}
