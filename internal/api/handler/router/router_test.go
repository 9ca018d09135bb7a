package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tagger(tag string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Order", tag)
			next.ServeHTTP(w, r)
		})
	}
}

func TestRouter_MiddlewaresNaOrdemDeclarada(t *testing.T) {
	r := New(WithRoutes(Route{
		Path:   "/api/deals",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Order", "handler")
		}),
		Middlewares: []func(http.Handler) http.Handler{tagger("primeiro"), tagger("segundo")},
	}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/deals", nil))

	assert.Equal(t, "primeiro,segundo,handler", strings.Join(rec.Header().Values("X-Order"), ","))
}

func TestRouter_RotaDesconhecida(t *testing.T) {
	r := New()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nada", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"RES_001"`)
}

func TestRouter_MetodoNaoPermitido(t *testing.T) {
	r := New(WithRoutes(Route{
		Path:    "/api/metrics",
		Method:  http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
	}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/metrics", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"VAL_001"`)
}
