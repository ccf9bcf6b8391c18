package metrics_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/rptxml/inspector/serializer"
	"github.com/viant/rptxml/internal/metrics"
)

func TestMetrics_Record(t *testing.T) {
	m := metrics.New()
	m.Record(&serializer.Result{
		Reports:  3,
		Embedded: 1,
		Issues: []*serializer.Issue{
			{Category: serializer.CategorySubreport, Err: errors.New("missing")},
			{Category: serializer.CategoryField, Err: errors.New("group")},
			{Category: serializer.CategoryField, Err: errors.New("group")},
		},
	}, 250*time.Millisecond, 2048)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.ReportsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EmbeddedTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.IssuesTotal.WithLabelValues("field")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.IssuesTotal.WithLabelValues("container")))
	assert.Equal(t, 2048.0, testutil.ToFloat64(m.OutputBytes))

	path := filepath.Join(t.TempDir(), "rptxml.prom")
	require.NoError(t, m.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `rptxml_issues_total{category="subreport"} 1`)
}
