package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration sourced from env vars. It is built once
// at startup and passed by value; nothing reads the environment afterwards.
type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string

	JWTSecret string
	TokenTTL  time.Duration

	AdminEmail     string
	AdminPassword  string
	AdminSecretKey string

	RazorpayKeyID     string
	RazorpayKeySecret string

	S3Endpoint  string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string

	SendGridAPIKey string
	MailSender     string

	CORSOrigins []string
	PDFDir      string

	LoginRatePerMinute int
}

// Load reads configuration from the environment and performs minimal validation.
func Load() (Config, error) {
	cfg := Config{
		Port:          fallback(os.Getenv("PORT"), "3000"),
		MongoURI:      strings.TrimSpace(os.Getenv("MONGO_URI")),
		MongoDatabase: fallback(os.Getenv("MONGO_DATABASE"), "careerconnect"),

		JWTSecret: strings.TrimSpace(os.Getenv("SECRET_KEY")),

		AdminEmail:     strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
		AdminPassword:  strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")),
		AdminSecretKey: strings.TrimSpace(os.Getenv("ADMIN_SECRET_KEY")),

		RazorpayKeyID:     strings.TrimSpace(os.Getenv("RAZORPAY_KEY_ID")),
		RazorpayKeySecret: strings.TrimSpace(os.Getenv("RAZORPAY_KEY_SECRET")),

		S3Endpoint:  strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
		S3Region:    fallback(os.Getenv("S3_REGION"), "us-east-1"),
		S3Bucket:    fallback(os.Getenv("S3_BUCKET"), "careerconnect-media"),
		S3AccessKey: strings.TrimSpace(os.Getenv("S3_ACCESS_KEY")),
		S3SecretKey: strings.TrimSpace(os.Getenv("S3_SECRET_KEY")),

		SendGridAPIKey: strings.TrimSpace(os.Getenv("SENDGRID_API_KEY")),
		MailSender:     fallback(os.Getenv("MAIL_SENDER"), "no-reply@careerconnect.dev"),

		CORSOrigins: parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
		PDFDir:      fallback(os.Getenv("PDF_DIR"), "."),
	}

	hours := fallback(os.Getenv("TOKEN_TTL_HOURS"), "24")
	if ttlHours, err := strconv.Atoi(hours); err == nil && ttlHours > 0 {
		cfg.TokenTTL = time.Duration(ttlHours) * time.Hour
	} else {
		cfg.TokenTTL = 24 * time.Hour
	}

	perMinute := fallback(os.Getenv("LOGIN_RATE_PER_MINUTE"), "30")
	if n, err := strconv.Atoi(perMinute); err == nil && n > 0 {
		cfg.LoginRatePerMinute = n
	} else {
		cfg.LoginRatePerMinute = 30
	}

	if cfg.MongoURI == "" {
		return Config{}, errors.New("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("SECRET_KEY is required")
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
