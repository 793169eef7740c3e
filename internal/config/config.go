package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	Env       string
	LogLevel  string
	LogFormat string
	LLM       LLMConfig
	Directory DirectoryConfig
}

type LLMConfig struct {
	Model         string
	APIKey        string
	Timeout       time.Duration
	ToolTimeout   time.Duration
	MaxToolRounds int
	Fake          bool
}

type DirectoryConfig struct {
	PostgresDSN string
	CacheSize   int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8081", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port:      *port,
		Env:       env,
		LogLevel:  firstNonEmpty(strings.TrimSpace(os.Getenv("LOG_LEVEL")), "info"),
		LogFormat: firstNonEmpty(strings.TrimSpace(os.Getenv("LOG_FORMAT")), defaultLogFormat(env)),
		LLM:       loadLLMConfig(),
		Directory: loadDirectoryConfig(),
	}, nil
}

func loadLLMConfig() LLMConfig {
	return LLMConfig{
		Model:         firstNonEmpty(strings.TrimSpace(os.Getenv("GEMINI_MODEL")), "gemini-2.0-flash"),
		APIKey:        strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		Timeout:       durationEnv("LLM_TIMEOUT", 30*time.Second),
		ToolTimeout:   durationEnv("TOOL_TIMEOUT", 10*time.Second),
		MaxToolRounds: intEnv("LLM_MAX_TOOL_ROUNDS", 3),
		Fake:          boolEnv("LLM_FAKE", false),
	}
}

func loadDirectoryConfig() DirectoryConfig {
	return DirectoryConfig{
		PostgresDSN: strings.TrimSpace(os.Getenv("DIRECTORY_PG_DSN")),
		CacheSize:   intEnv("DIRECTORY_CACHE_SIZE", 256),
	}
}

func defaultLogFormat(env string) string {
	if strings.EqualFold(env, "local") {
		return "console"
	}
	return "json"
}

func durationEnv(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func intEnv(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func boolEnv(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
