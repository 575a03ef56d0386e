package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultModel = "gemini-2.5-pro"

type Config struct {
	Port         string
	GeminiAPIKey string
	GeminiModel  string

	// StrictStartup decide o que acontece sem credencial:
	// true derruba o processo no boot, false só desabilita o /chat.
	StrictStartup bool
}

// Load carrega a config do servidor sempre ativo (startup estrito por padrão).
func Load() *Config {
	return load(true)
}

// LoadOnDemand carrega a config das funções serverless (Lambda / Vercel),
// onde uma instância mal configurada não pode derrubar o deploy.
func LoadOnDemand() *Config {
	return load(false)
}

func load(strictDefault bool) *Config {
	_ = godotenv.Load()

	apiKey := getEnv("GEMINI_API_KEY", "")
	if apiKey == "" {
		apiKey = getEnv("GOOGLE_API_KEY", "")
	}

	cfg := &Config{
		Port:          getEnv("PORT", "3000"),
		GeminiAPIKey:  apiKey,
		GeminiModel:   getEnv("GEMINI_MODEL", defaultModel),
		StrictStartup: getEnvBool("STRICT_STARTUP", strictDefault),
	}

	return cfg
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
