package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/felixbraun/storeradar/internal/core/domain"
	"github.com/felixbraun/storeradar/internal/core/ports"
	"github.com/felixbraun/storeradar/internal/observability/metrics"
)

// Defaults for the browser extension, which may omit coordinates while the
// user has not granted location access. Central Munich.
const (
	defaultLat = "48.1486"
	defaultLon = "11.5686"
)

type Router struct {
	finder  ports.PlaceFinder
	metrics *metrics.ServerMetrics
}

func NewRouter(finder ports.PlaceFinder, m *metrics.ServerMetrics) *Router {
	return &Router{
		finder:  finder,
		metrics: m,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/get_places", rt.getPlaces)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	var handler http.Handler = corsMiddleware(mux)
	handler = accessLogMiddleware(handler)
	handler = requestIDMiddleware(handler)
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(handler)
	}
	return handler
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) getPlaces(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	params := r.URL.Query()
	query := strings.TrimSpace(params.Get("query"))
	if query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "query is required"})
		return
	}
	lat := params.Get("lat")
	if lat == "" {
		lat = defaultLat
	}
	lon := params.Get("lon")
	if lon == "" {
		lon = defaultLon
	}

	places, err := rt.finder.FindPlaces(r.Context(), query, lat, lon)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if places == nil {
		places = []domain.Place{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"places": places})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
