package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveDispatch(t *testing.T) {
	m := New()

	m.ObserveDispatch("LaunchRequest", "ok", 2*time.Millisecond)
	m.ObserveDispatch("LaunchRequest", "ok", time.Millisecond)
	m.ObserveDispatch("unknown", "unsupported", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DispatchTotal.WithLabelValues("LaunchRequest", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DispatchTotal.WithLabelValues("unknown", "unsupported")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.DispatchDuration))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveDispatch("LaunchRequest", "ok", time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `skill_dispatch_total{kind="LaunchRequest",outcome="ok"} 1`)
}
