package service

import (
	"fmt"
	"os"
	"strconv"
)

// EnvString returns the env var value or the fallback when unset.
func EnvString(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

// EnvUint64 parses the env var as a uint64, returning the fallback when unset.
func EnvUint64(name string, fallback uint64) (uint64, error) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return fallback, nil
	}
	parsed, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", name, err)
	}
	return parsed, nil
}

// EnvFloat64 parses the env var as a float64, returning the fallback when unset.
func EnvFloat64(name string, fallback float64) (float64, error) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", name, err)
	}
	return parsed, nil
}

// EnvBool parses the env var as a bool, returning the fallback when unset.
func EnvBool(name string, fallback bool) (bool, error) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid value for %s: %w", name, err)
	}
	return parsed, nil
}

// EnvInt parses the env var as an int, returning the fallback when unset.
func EnvInt(name string, fallback int) (int, error) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", name, err)
	}
	return parsed, nil
}
