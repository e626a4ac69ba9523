package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(FieldsMissing.WithLabelValues("syntax"))
	FieldsMissing.WithLabelValues("syntax").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(FieldsMissing.WithLabelValues("syntax")))
}

func TestRegistered(t *testing.T) {
	n, err := testutil.GatherAndCount(prometheus.DefaultGatherer,
		"csscatalog_items_skipped_total", "csscatalog_pages_fetched_total", "csscatalog_bytes_fetched_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
