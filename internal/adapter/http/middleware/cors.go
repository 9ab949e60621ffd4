package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured frontend origin.
func CORS(frontendURL string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: []string{strings.TrimRight(frontendURL, "/")},
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions,
			http.MethodPatch, http.MethodPut, http.MethodDelete,
		},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           86400 * time.Second,
	})
}
