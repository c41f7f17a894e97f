package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/homelab-dashboard/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":5000")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-g string   JWT signing algorithm identifier (HS256/HS384/HS512)
//	-t int      session token validity, hours
//	-o string   comma-separated list of allowed CORS origins
//	-l string   Ollama base URL (e.g., "http://localhost:11434")
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - The token validity flag is accepted as an integer in hours and then
//     converted to a time.Duration value.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-g", "-t", "-o", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.JWTSecret, "s", config.JWTSecret, "JWT secret key")
	fs.StringVar(&config.JWTAlgorithm, "g", config.JWTAlgorithm, "JWT signing algorithm")

	tokenValidityHours := fs.Int("t", int(config.TokenValidityDuration.Hours()), "token_validity_duration (in hours)")
	origins := fs.String("o", strings.Join(config.AllowedOrigins, ","), "allowed CORS origins (comma-separated)")

	fs.StringVar(&config.OllamaBaseURL, "l", config.OllamaBaseURL, "Ollama base URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidityHours) * time.Hour

	if *origins != "" {
		config.AllowedOrigins = strings.Split(*origins, ",")
	}
}
