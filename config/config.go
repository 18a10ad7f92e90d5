// config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"songify/internal/storage/memory"
)

type Config struct {
	ServerPort   int
	LogLevel     string
	IDPolicy     memory.IDPolicy
	SeedSongs    bool
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LoadConfig reads .env (when present) and the process environment, falling back to defaults.
func LoadConfig() (*Config, error) {
	godotenv.Load()

	serverPort, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		serverPort = 8080
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "debug"
	}

	idPolicy, err := memory.ParseIDPolicy(os.Getenv("ID_POLICY"))
	if err != nil {
		return nil, fmt.Errorf("ID_POLICY: %w", err)
	}

	seedSongs := true
	if v := os.Getenv("SEED_SONGS"); v != "" {
		seedSongs, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("SEED_SONGS: %w", err)
		}
	}

	readTimeout, err := durationEnv("READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	writeTimeout, err := durationEnv("WRITE_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:   serverPort,
		LogLevel:     logLevel,
		IDPolicy:     idPolicy,
		SeedSongs:    seedSongs,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
