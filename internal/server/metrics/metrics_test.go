package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/storerating/internal/logging"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveRPC("Login", "OK", 3*time.Millisecond)
	m.ObserveRPC("Login", "OK", time.Millisecond)
	m.Login(true)
	m.Login(false)
	m.Login(false)
	m.RatingSubmitted(true)
	m.RatingSubmitted(false)
	m.RateLimited("Signup")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.rpcRequests.WithLabelValues("Login", "OK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.logins.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.logins.WithLabelValues("failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ratings.WithLabelValues("created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ratings.WithLabelValues("updated")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rateLimited.WithLabelValues("Signup")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRPC("Ping", "OK", time.Millisecond)
		m.Login(true)
		m.RatingSubmitted(true)
		m.RateLimited("Login")
	})
}

func TestRouter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.Login(true)

	srv := httptest.NewServer(NewRouter(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	rec := httptest.NewRecorder()
	NewRouter(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `storerating_auth_logins_total{result="success"} 1`)

	rec = httptest.NewRecorder()
	NewRouter(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/metrics", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHTTPServer_StopsOnCancel(t *testing.T) {
	s := NewHTTPServer("127.0.0.1:0", prometheus.NewRegistry(), logging.Nop{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("metrics server did not stop")
	}
}

func TestHTTPServer_BadAddress(t *testing.T) {
	s := NewHTTPServer("127.0.0.1:99999", prometheus.NewRegistry(), logging.Nop{})
	assert.Error(t, s.Run(context.Background()))
}
