package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (timeouts, endpoints, etc.)
// Vendor credentials deliberately default to empty strings: a missing key degrades
// the corresponding vendor call instead of blocking startup.
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	Solana     SolanaConfig
	ElevenLabs ElevenLabsConfig
	Gemini     GeminiConfig
	Carfax     CarfaxConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type SolanaConfig struct {
	RPCURL          string `envconfig:"SOLANA_RPC_URL" default:"https://api.devnet.solana.com"`
	MerchantAddress string `envconfig:"SOLANA_MERCHANT_ADDRESS" default:"11111111111111111111111111111111"`
}

type ElevenLabsConfig struct {
	APIKey        string        `envconfig:"ELEVENLABS_API_KEY" default:""`
	AgentID       string        `envconfig:"ELEVENLABS_AGENT_ID" default:""`
	PhoneNumberID string        `envconfig:"ELEVENLABS_PHONE_NUMBER_ID" default:""`
	WebhookSecret string        `envconfig:"ELEVENLABS_WEBHOOK_SECRET" default:""`
	BaseURL       string        `envconfig:"ELEVENLABS_BASE_URL" default:"https://api.elevenlabs.io/v1"`
	BaseURLV2     string        `envconfig:"ELEVENLABS_BASE_URL_V2" default:"https://api.elevenlabs.io/v2"`
	Timeout       time.Duration `envconfig:"ELEVENLABS_TIMEOUT" default:"30s"`
}

type GeminiConfig struct {
	APIKey string `envconfig:"GOOGLE_GENAI_API_KEY" default:""`
	Model  string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
}

type CarfaxConfig struct {
	BaseURL string        `envconfig:"CARFAX_BASE_URL" default:"https://helix.carfax.com"`
	Timeout time.Duration `envconfig:"CARFAX_TIMEOUT" default:"15s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Solana: SolanaConfig{
			RPCURL:          "https://api.devnet.solana.com",
			MerchantAddress: "11111111111111111111111111111111",
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.5-flash",
		},
	}
}
