package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	API       APIConfig
	Session   SessionConfig
	Search    SearchConfig
	Dashboard DashboardConfig
	View      ViewConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	TokenFile string
}

type SearchConfig struct {
	Debounce   time.Duration
	MinTermLen int
}

type DashboardConfig struct {
	RecentLimit   int
	TopCategories int
}

type ViewConfig struct {
	Locale   string
	Currency string
}

// Load reads an optional .env file and falls back to environment variables,
// then to defaults. Absence of a .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	timeout, _ := strconv.Atoi(getEnv("FINPANEL_HTTP_TIMEOUT", "15"))
	debounce, _ := strconv.Atoi(getEnv("FINPANEL_SEARCH_DEBOUNCE_MS", "300"))
	recentLimit, _ := strconv.Atoi(getEnv("FINPANEL_RECENT_LIMIT", "10"))
	topCategories, _ := strconv.Atoi(getEnv("FINPANEL_TOP_CATEGORIES", "5"))

	return &Config{
		API: APIConfig{
			BaseURL: getEnv("FINPANEL_API_URL", "http://localhost:8000"),
			Timeout: time.Duration(timeout) * time.Second,
		},
		Session: SessionConfig{
			TokenFile: getEnv("FINPANEL_TOKEN_FILE", defaultTokenFile()),
		},
		Search: SearchConfig{
			Debounce:   time.Duration(debounce) * time.Millisecond,
			MinTermLen: 2,
		},
		Dashboard: DashboardConfig{
			RecentLimit:   recentLimit,
			TopCategories: topCategories,
		},
		View: ViewConfig{
			Locale:   getEnv("FINPANEL_LOCALE", "pt-BR"),
			Currency: getEnv("FINPANEL_CURRENCY", "BRL"),
		},
	}, nil
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".finpanel-token"
	}
	return filepath.Join(home, ".finpanel", "token")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
