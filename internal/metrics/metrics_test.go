package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsByRouteTemplate(t *testing.T) {
	m := New(func() int { return 0 })

	router := mux.NewRouter()
	router.Use(m.Middleware)
	router.HandleFunc("/songs/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods("GET")

	for _, path := range []string{"/songs/1", "/songs/2"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/songs/{id}", "GET", "404")))
	count, err := testutil.GatherAndCount(m.Registry(), "songify_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSongsStoredGauge(t *testing.T) {
	size := 4
	m := New(func() int { return size })

	expected := `
# HELP songify_songs_stored Number of songs currently held in the store.
# TYPE songify_songs_stored gauge
songify_songs_stored 4
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "songify_songs_stored"))

	size = 3
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "songify_songs_stored 3")
}
