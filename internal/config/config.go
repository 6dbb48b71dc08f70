// Package config loads checkd settings from environment variables.
package config

import "os"

type Config struct {
	Port            string
	CommonListPath  string
	LogRawDir       string
	LogProcessedDir string
}

// Load reads configuration from the environment.
func Load() *Config {
	return LoadFrom(nil)
}

// LoadFrom reads configuration from the provided map, falling back to
// os.Getenv for missing keys. If env is nil, all values come from os.Getenv.
func LoadFrom(env map[string]string) *Config {
	get := func(key string) string {
		if env != nil {
			return env[key]
		}
		return os.Getenv(key)
	}

	return &Config{
		Port:            getOrDefault(get, "PORT", "8090"),
		CommonListPath:  get("COMMON_LIST"),
		LogRawDir:       getOrDefault(get, "LOG_RAW_DIR", "logs/raw"),
		LogProcessedDir: getOrDefault(get, "LOG_PROCESSED_DIR", "logs/processed"),
	}
}

func getOrDefault(get func(string) string, key, defaultVal string) string {
	if v := get(key); v != "" {
		return v
	}
	return defaultVal
}
