package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultAccessTokenExpiryMin  = 30
	DefaultRefreshTokenExpiryMin = 10080 // 7 days

	DefaultLoginMaxFailures = 5
	DefaultLoginWindowMin   = 15

	DefaultResetMaxPerEmail    = 1
	DefaultResetMaxPerIP       = 3
	DefaultResetWindowMin      = 10
	DefaultResetTokenExpiryMin = 15

	DefaultVerifyTokenExpiryHours = 24
)

type Config struct {
	Env  string
	Port string

	DBURL             string
	AccessTokenSecret string

	AccessExpiryMin  int
	RefreshExpiryMin int

	LoginMaxFailures int
	LoginWindowMin   int

	ResetMaxPerEmail    int
	ResetMaxPerIP       int
	ResetWindowMin      int
	ResetTokenExpiryMin int

	VerifyTokenExpiryHours int

	MailAPIKey  string
	MailSender  string
	FrontendURL string
}

// Load builds the process-wide configuration. A config/.env.dev or
// config/.env.prod file is read first when present; real environment
// variables always win over file values.
func Load() *Config {
	env := getEnv("ENV", "development")

	suffix := "dev"
	if env == "production" {
		suffix = "prod"
	}
	// Missing file is fine, env vars may carry everything.
	_ = godotenv.Load(fmt.Sprintf("config/.env.%s", suffix))

	return &Config{
		Env:  env,
		Port: getEnv("PORT", "8080"),

		DBURL:             mustGetEnv("DB_URL"),
		AccessTokenSecret: mustGetEnv("ACCESS_TOKEN_SECRET"),

		AccessExpiryMin:  getEnvAsInt("ACCESS_TOKEN_EXPIRY", DefaultAccessTokenExpiryMin),
		RefreshExpiryMin: getEnvAsInt("REFRESH_TOKEN_EXPIRY", DefaultRefreshTokenExpiryMin),

		LoginMaxFailures: getEnvAsInt("LOGIN_MAX_FAILURES", DefaultLoginMaxFailures),
		LoginWindowMin:   getEnvAsInt("LOGIN_WINDOW_MINUTES", DefaultLoginWindowMin),

		ResetMaxPerEmail:    getEnvAsInt("RESET_MAX_PER_EMAIL", DefaultResetMaxPerEmail),
		ResetMaxPerIP:       getEnvAsInt("RESET_MAX_PER_IP", DefaultResetMaxPerIP),
		ResetWindowMin:      getEnvAsInt("RESET_WINDOW_MINUTES", DefaultResetWindowMin),
		ResetTokenExpiryMin: getEnvAsInt("RESET_TOKEN_EXPIRY", DefaultResetTokenExpiryMin),

		VerifyTokenExpiryHours: getEnvAsInt("VERIFY_TOKEN_EXPIRY_HOURS", DefaultVerifyTokenExpiryHours),

		MailAPIKey:  getEnv("MAIL_API_KEY", ""),
		MailSender:  getEnv("MAIL_SENDER", "no-reply@localhost"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
