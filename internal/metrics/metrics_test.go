package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestStartedRecordsOutcome(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("PUT", "/complaint/:id", "404"))

	done := RequestStarted()
	assert.Equal(t, float64(1), testutil.ToFloat64(httpInFlight))
	done("put", "/complaint/:id", http.StatusNotFound)

	assert.Equal(t, float64(0), testutil.ToFloat64(httpInFlight))
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("PUT", "/complaint/:id", "404")))
}

func TestRecordComplaintEvent(t *testing.T) {
	before := testutil.ToFloat64(complaintEvents.WithLabelValues(ComplaintResolved))
	RecordComplaintEvent(ComplaintResolved)
	assert.Equal(t, before+1, testutil.ToFloat64(complaintEvents.WithLabelValues(ComplaintResolved)))
}

func TestHandlerExposesRegistry(t *testing.T) {
	RecordCustomerCreated()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "rms_customers_created_total")
}
