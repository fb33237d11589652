// Package config provides shared configuration helpers for the commands.
package config

import "os"

// GetEnv returns the value of the environment variable named by key, or
// fallback if it is unset.
func GetEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
