package materials

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
	NewHandler(slog.Default(), newTestService()).MountRoutes(r)
	return r
}

func TestAdjustStockEndpoint(t *testing.T) {
	r := newTestRouter()

	create := httptest.NewRequest(http.MethodPost, "/materials", strings.NewReader(`{"name":"Kabelgoot","stock":10}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, create)
	require.Equal(t, http.StatusCreated, rr.Code)

	adjust := httptest.NewRequest(http.MethodPost, "/materials/1/stock", strings.NewReader(`{"delta":-4}`))
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, adjust)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"stock":6`)
}

func TestAdjustStockZeroDeltaIsNoOp(t *testing.T) {
	r := newTestRouter()

	create := httptest.NewRequest(http.MethodPost, "/materials", strings.NewReader(`{"name":"Kabelgoot","stock":10}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, create)
	require.Equal(t, http.StatusCreated, rr.Code)

	adjust := httptest.NewRequest(http.MethodPost, "/materials/1/stock", strings.NewReader(`{"delta":0}`))
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, adjust)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"stock":10`)
}

func TestAdjustStockBelowZeroReturnsConflict(t *testing.T) {
	r := newTestRouter()

	create := httptest.NewRequest(http.MethodPost, "/materials", strings.NewReader(`{"name":"Kabelgoot","stock":3}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, create)
	require.Equal(t, http.StatusCreated, rr.Code)

	adjust := httptest.NewRequest(http.MethodPost, "/materials/1/stock", strings.NewReader(`{"delta":-5}`))
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, adjust)

	require.Equal(t, http.StatusConflict, rr.Code)
}
