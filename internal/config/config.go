package config // package config loads application configuration from environment variables

import (
	"os" // os provides access to environment variables
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. The service needs very little: where to listen
// and which database file to use.
type Config struct {
	Env    string // application environment (e.g. "dev", "prod")
	Port   string // HTTP port to listen on
	DBFile string // path of the SQLite database file
}

// Load reads configuration values from environment variables and returns a
// Config. Every variable has a development default so the service can run
// without any environment set up.
func Load() Config {
	return Config{
		Env:    getenv("APP_ENV", "dev"),         // environment (dev/test/prod)
		Port:   getenv("APP_PORT", "8080"),       // port to bind the HTTP server
		DBFile: getenv("DB_FILE", "database.db"), // SQLite file, recreated on boot
	}
}

// getenv retrieves the value of an environment variable, falling back to
// the provided default when the variable is unset or empty.
func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
