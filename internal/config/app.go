package config

import (
	"os"
	"strings"
)

// Development switches binaries to colourised debug logging.
func Development() bool {
	development, ok := os.LookupEnv("SWEEPER_DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

func Addr() string {
	addr, ok := os.LookupEnv("SWEEPER_ADDR")
	if !ok {
		return ":8080"
	}
	return addr
}

// AllowedOrigins is the comma separated SWEEPER_ORIGINS list. Empty means
// any origin.
func AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(os.Getenv("SWEEPER_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
