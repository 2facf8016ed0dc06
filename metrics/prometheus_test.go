package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectors(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.HTTPRequestsTotal.WithLabelValues("GET", "/api/tasks", "200").Inc()
	m.TokensIssuedTotal.Inc()
	m.AuthRejectionsTotal.WithLabelValues("length").Add(2)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/tasks", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TokensIssuedTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AuthRejectionsTotal.WithLabelValues("length")))

	count, err := testutil.GatherAndCount(m.Registry, "gotasks_tokens_issued_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGet_IsSingleton(t *testing.T) {
	assert.Same(t, Get(), Get())
}
