package customers

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestRouter() chi.Router {
	r := chi.NewRouter()
	h := NewHandler(slog.Default(), newTestService())
	h.MountRoutes(r)
	return r
}

func TestCreateCustomerEndpoint(t *testing.T) {
	r := newTestRouter()

	body := `{"name":"Jansen BV","email":"info@jansen.nl","city":"Utrecht"}`
	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Contains(t, rr.Body.String(), `"customerNumber":"KL-`)
	require.Contains(t, rr.Body.String(), `"status":"Actief"`)
}

func TestCreateCustomerRejectsInvalidStatus(t *testing.T) {
	r := newTestRouter()

	body := `{"name":"Jansen BV","status":"Onbekend"}`
	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetMissingCustomerReturns404(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/customers/999", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Contains(t, rr.Body.String(), `"status":404`)
}

func TestListCustomersReturnsEmptyArray(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "[]\n", rr.Body.String())
}
