package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	ProviderBaseURL string
	ProviderToken   string
	ProviderTimeout time.Duration
	KafkaBrokers    []string
	DefaultPageSize int
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env file is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	env := Config{
		Port:            "9446",
		ProviderBaseURL: "http://localhost:9440/api",
		ProviderTimeout: 30 * time.Second,
		DefaultPageSize: 5,
	}

	if v := os.Getenv("PORT"); v != "" {
		env.Port = v
	}

	if v := os.Getenv("PROVIDER_BASE_URL"); v != "" {
		env.ProviderBaseURL = v
	}

	env.ProviderToken = os.Getenv("PROVIDER_API_TOKEN")

	if v := os.Getenv("PROVIDER_TIMEOUT_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		env.ProviderTimeout = time.Duration(seconds) * time.Second
	}

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		env.KafkaBrokers = strings.Split(v, ",")
	}

	if v := os.Getenv("DEFAULT_PAGE_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		env.DefaultPageSize = size
	}

	return &env, nil
}
