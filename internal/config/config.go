// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP (default: 8080)
//   - BASE_URL: URL público do site, usado em links absolutos (default: vazio)
//   - GIN_MODE: Modo do gin, debug/release/test (default: release)
//   - SITE_CONTENT_FILE: Ficheiro YAML com o conteúdo do site (default: conteúdo embutido)
//
// ## Envio de pedidos
//   - QUOTE_ENDPOINT: URL para onde são enviados os pedidos de simulação; vazio desativa o envio
//   - QUOTE_TIMEOUT: Tempo máximo de cada envio (default: 10s)
//   - CONTACT_ENDPOINT: URL para onde são enviadas as mensagens de contacto; vazio aceita localmente
//
// ## Observabilidade
//   - LOG_LEVEL: Nível de log do zap (default: info)
//   - TRACING_ENABLED: Ativa o envio de traces OTLP (default: false)
//   - TRACING_ENDPOINT: Endpoint gRPC do coletor OTLP (default: localhost:4317)
//   - TRACING_SAMPLE_RATIO: Fração de traces amostrados, entre 0 e 1 (default: 1)
//   - SENTRY_DSN: DSN do Sentry; vazio desativa o reporte de erros
//   - SENTRY_ENVIRONMENT: Ambiente reportado ao Sentry (default: production)
//
// ## Limites
//   - RATE_LIMIT_RPS: Pedidos POST por segundo por IP (default: 5)
//   - RATE_LIMIT_BURST: Rajada máxima por IP (default: 10)
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/seguros-online/app-simulacao/internal/utils"
)

type Config struct {
	ServerPort      string
	BaseURL         string
	GinMode         string
	SiteContentFile string

	QuoteEndpoint   string
	QuoteTimeout    time.Duration
	ContactEndpoint string

	LogLevel string

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string
	TracingSample   float64

	SentryDSN         string
	SentryEnvironment string

	RateLimitRPS   float64
	RateLimitBurst int
}

// LoadConfig lê o .env (se existir) e as variáveis de ambiente.
// Devolve erro quando um endpoint configurado não é um URL http(s) válido.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		BaseURL:         getEnv("BASE_URL", ""),
		GinMode:         getEnv("GIN_MODE", "release"),
		SiteContentFile: getEnv("SITE_CONTENT_FILE", ""),

		QuoteTimeout: getEnvDuration("QUOTE_TIMEOUT", 10*time.Second),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		TracingEnabled:  getEnvBool("TRACING_ENABLED", false),
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
		TracingSample:   getEnvFloat("TRACING_SAMPLE_RATIO", 1),

		SentryDSN:         getEnv("SENTRY_DSN", ""),
		SentryEnvironment: getEnv("SENTRY_ENVIRONMENT", "production"),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
	}

	var err error
	if cfg.QuoteEndpoint, err = utils.ValidarEndpoint(getEnv("QUOTE_ENDPOINT", "")); err != nil {
		return nil, fmt.Errorf("QUOTE_ENDPOINT: %w", err)
	}
	if cfg.ContactEndpoint, err = utils.ValidarEndpoint(getEnv("CONTACT_ENDPOINT", "")); err != nil {
		return nil, fmt.Errorf("CONTACT_ENDPOINT: %w", err)
	}
	if cfg.QuoteTimeout <= 0 {
		cfg.QuoteTimeout = 10 * time.Second
	}
	if cfg.TracingSample < 0 || cfg.TracingSample > 1 {
		return nil, fmt.Errorf("TRACING_SAMPLE_RATIO: %v fora de [0, 1]", cfg.TracingSample)
	}

	return cfg, nil
}

// Addr devolve o endereço de escuta do servidor HTTP.
func (c *Config) Addr() string {
	return ":" + c.ServerPort
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
