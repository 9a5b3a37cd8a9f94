package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophotel/internal/optimistic"
)

func TestMutationRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	mr := NewMutationRecorder(reg)

	mr.ObserveMutation(optimistic.KindUpdate, optimistic.OutcomeSettled, 120*time.Millisecond)
	mr.ObserveMutation(optimistic.KindUpdate, optimistic.OutcomeReverted, 80*time.Millisecond)
	mr.ObserveMutation(optimistic.KindInsert, optimistic.OutcomeRejected, 0)
	mr.ObserveUndo(optimistic.KindDelete)

	assert.Equal(t, 1.0, testutil.ToFloat64(mr.outcomes.WithLabelValues("update", "settled")))
	assert.Equal(t, 1.0, testutil.ToFloat64(mr.outcomes.WithLabelValues("update", "reverted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(mr.outcomes.WithLabelValues("insert", "rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(mr.undoTotal.WithLabelValues("delete")))

	// rejected не попадает в гистограмму
	assert.Equal(t, 1, testutil.CollectAndCount(mr.duration))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)
}

func TestMutationRecorder_NilSafe(t *testing.T) {
	var mr *MutationRecorder
	assert.NotPanics(t, func() {
		mr.ObserveMutation(optimistic.KindUpdate, optimistic.OutcomeSettled, time.Second)
		mr.ObserveUndo(optimistic.KindInsert)
	})
}

func TestHTTPRecorderAndHandler(t *testing.T) {
	reg := prom.NewRegistry()
	hr := NewHTTPRecorder(reg)

	hr.Started()
	hr.Observe("GET /api/v1/rooms", http.MethodGet, http.StatusOK, 15*time.Millisecond)
	hr.Finished()

	assert.Equal(t, 1.0, testutil.ToFloat64(hr.requests.WithLabelValues("GET /api/v1/rooms", "GET", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(hr.inflight))

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "gophotel_http_requests_total")
}
