package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/tsawler/dstv/core"
)

func TestRecordConversion(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordConversion("svg", nil, time.Millisecond)
	m.RecordConversion("svg", nil, time.Millisecond)
	m.RecordConversion("svg", fmt.Errorf("wrapped: %w", core.ErrInvalidFaceCode), time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Conversions.WithLabelValues("svg", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Conversions.WithLabelValues("svg", "invalid_face")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Duration))
}

func TestRecordWarningsAndRecords(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordWarnings([]core.Warning{{Code: "PU"}, {Code: "PU"}, {Message: "surplus header lines"}})
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Warnings.WithLabelValues("PU")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Warnings.WithLabelValues("header")))

	m.RecordRecords(map[string]int{"Hole": 3, "OuterBorder": 1})
	m.RecordRecords(map[string]int{"Hole": 2})
	assert.Equal(t, 5.0, testutil.ToFloat64(m.Records.WithLabelValues("Hole")))
}

func TestSeparateRegistries(t *testing.T) {
	// registering twice on distinct registries must not panic
	a := New(prometheus.NewRegistry())
	b := New(prometheus.NewRegistry())
	a.RecordInput(100)
	assert.Equal(t, 1, testutil.CollectAndCount(a.InputBytes))
	assert.Equal(t, 1, testutil.CollectAndCount(b.InputBytes))
}
