package rest

import (
	"net/http"

	"github.com/heartmarshall/daumdict/internal/transport/middleware"
)

// Routes registers the API endpoints on a new mux. translateMW wraps only
// the translate route (rate limiting); it may be nil.
func Routes(health *HealthHandler, translate *TranslateHandler, translateMW middleware.Middleware) *http.ServeMux {
	if translateMW == nil {
		translateMW = middleware.Chain()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", health.Health)
	mux.Handle("POST /api/translate", translateMW(http.HandlerFunc(translate.Translate)))
	return mux
}
