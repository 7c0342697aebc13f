package workorders

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	svc, _ := newTestService(t)
	r := chi.NewRouter()
	NewHandler(slog.Default(), svc).MountRoutes(r)
	return r
}

func TestCompleteEndpoint(t *testing.T) {
	r := newTestRouter(t)

	create := httptest.NewRequest(http.MethodPost, "/workorders", strings.NewReader(`{"customerId":1,"title":"CV onderhoud"}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, create)
	require.Equal(t, http.StatusCreated, rr.Code)

	complete := httptest.NewRequest(http.MethodPut, "/workorders/1/complete",
		strings.NewReader(`{"notes":"done","laborHours":3.5,"photos":[]}`))
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, complete)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"status":"Voltooid"`)
	require.Contains(t, rr.Body.String(), `"laborHours":3.5`)
}

func TestCompleteMissingOrderReturns404(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/workorders/999/complete",
		strings.NewReader(`{"laborHours":1}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCompleteWithoutLaborHoursIsRejected(t *testing.T) {
	r := newTestRouter(t)

	create := httptest.NewRequest(http.MethodPost, "/workorders", strings.NewReader(`{"customerId":1,"title":"Klus"}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, create)
	require.Equal(t, http.StatusCreated, rr.Code)

	// laborHours absent entirely: zero is fine, missing is not.
	req := httptest.NewRequest(http.MethodPut, "/workorders/1/complete",
		strings.NewReader(`{"notes":"done"}`))
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}
