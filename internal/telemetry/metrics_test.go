package telemetry

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCountRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequests.WithLabelValues("GET", "ok"))
	CountRequest("GET", nil)
	after := testutil.ToFloat64(APIRequests.WithLabelValues("GET", "ok"))
	assert.Equal(t, before+1, after)
}

func TestCountRequest_Error(t *testing.T) {
	before := testutil.ToFloat64(APIRequests.WithLabelValues("POST", "error"))
	CountRequest("POST", errors.New("boom"))
	after := testutil.ToFloat64(APIRequests.WithLabelValues("POST", "error"))
	assert.Equal(t, before+1, after)
}

func TestSessionStateGauge(t *testing.T) {
	SessionState.Set(1)
	assert.Equal(t, 1.0, testutil.ToFloat64(SessionState))
	SessionState.Set(0)
	assert.Equal(t, 0.0, testutil.ToFloat64(SessionState))
}
