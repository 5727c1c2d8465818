package handlers

import (
	"net/http"

	"github.com/rs/cors"

	"gitlab.com/dagmap/dagmap/internal/config"
)

var (
	corsHandler = cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
)

// CorsHandler allows any origin to read the web root and use the graph API,
// unless cross-origin requests are disabled
func CorsHandler(config *config.Config, handler http.Handler) http.Handler {
	if !config.General.DisableCrossOriginRequests {
		handler = corsHandler.Handler(handler)
	}
	return handler
}
