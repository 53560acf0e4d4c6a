package configs

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	SMSBaseURL    string
	SMSAccountSID string
	SMSAuthToken  string
	SMSFrom       string

	SeedAdminPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file, using environment")
	}

	return &Config{
		DBSource:  getEnv("DB_SOURCE", "tavola.db"),
		Port:      getEnv("PORT", "8000"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    24 * time.Hour,

		SMSBaseURL:    getEnv("SMS_BASE_URL", "https://api.twilio.com/2010-04-01"),
		SMSAccountSID: os.Getenv("SMS_ACCOUNT_SID"),
		SMSAuthToken:  os.Getenv("SMS_AUTH_TOKEN"),
		SMSFrom:       os.Getenv("SMS_FROM"),

		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", "admin123"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
