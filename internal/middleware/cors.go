package middleware

import (
	"net/http"
	"slices"

	"github.com/rs/cors"
)

// Cors lets browsers on the given origins open games. With no origins every
// origin is allowed.
func Cors(origins ...string) Middleware {
	options := cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return len(origins) == 0 || slices.Contains(origins, origin)
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
		},
		AllowedHeaders: []string{"*"},
	}
	return cors.New(options).Handler
}
