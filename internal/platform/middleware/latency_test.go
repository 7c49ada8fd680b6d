package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type recordedObservation struct {
	endpoint string
	seconds  float64
}

type stubObserver struct {
	observed []recordedObservation
}

func (o *stubObserver) ObserveEndpointLatency(endpoint string, durationSeconds float64) {
	o.observed = append(o.observed, recordedObservation{endpoint, durationSeconds})
}

func TestLatencyObservesRoutePattern(t *testing.T) {
	obs := &stubObserver{}

	r := chi.NewRouter()
	r.Use(Latency(obs))
	r.Get("/credentials/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/credentials/0xabc", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	if assert.Len(t, obs.observed, 1) {
		assert.Equal(t, "/credentials/{id}", obs.observed[0].endpoint)
		assert.GreaterOrEqual(t, obs.observed[0].seconds, 0.0)
	}
}

func TestLatencyNilObserver(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Latency(nil))
	r.Get("/owner", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/owner", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
