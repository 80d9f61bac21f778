// Package envx reads AGENDA_* settings from the process environment, after
// merging an optional .env file from the working directory.
package envx

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Prefix is prepended to every key looked up by this package.
const Prefix = "AGENDA_"

// loadDotEnv is a seam for tests.
var loadDotEnv = func() error { return godotenv.Load() }

// LoadDotEnv merges ./.env into the environment. Variables already set in the
// environment win. A missing file is not an error.
func LoadDotEnv() {
	_ = loadDotEnv()
}

// String sets *dst to $AGENDA_<key> when that variable is non-empty.
func String(dst *string, key string) {
	if v := os.Getenv(Prefix + key); v != "" {
		*dst = v
	}
}

// Bool sets *dst from $AGENDA_<key> when it parses as a boolean.
func Bool(dst *bool, key string) {
	if v := os.Getenv(Prefix + key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

// Int sets *dst from $AGENDA_<key> when it parses as an integer.
func Int(dst *int, key string) {
	if v := os.Getenv(Prefix + key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// Duration sets *dst from $AGENDA_<key> when it parses with time.ParseDuration.
func Duration(dst *time.Duration, key string) {
	if v := os.Getenv(Prefix + key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
