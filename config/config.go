package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Storage modes. The mode is an explicit configuration choice made once at
// process start, never inferred from which credentials happen to be set.
const (
	StorageModePostgres = "postgres"
	StorageModeFile     = "file"
)

// Config holds all configuration for the application.
type Config struct {
	StorageMode string
	DatabaseURL string
	DataFile    string

	SessionSecret string
	AdminUsername string
	AdminPassword string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	RazorpayKeyID     string
	RazorpayKeySecret string

	SiteURL string
	Port    string
	Env     string
	LogDir  string
}

// LoadConfig loads configuration from the environment. A .env file is applied
// when present but is not required.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		StorageMode:       os.Getenv("STORAGE_MODE"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DataFile:          os.Getenv("DATA_FILE"),
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPUsername:      os.Getenv("SMTP_USERNAME"),
		SMTPPassword:      os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:          os.Getenv("SMTP_FROM"),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		SiteURL:           os.Getenv("SITE_URL"),
		Port:              os.Getenv("PORT"),
		Env:               os.Getenv("ENV"),
		LogDir:            os.Getenv("LOG_DIR"),
	}

	if port := os.Getenv("SMTP_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT %q: %v", port, err)
		}
		config.SMTPPort = p
	} else {
		config.SMTPPort = 587
	}

	if config.StorageMode == "" {
		config.StorageMode = StorageModeFile
	}
	if config.StorageMode != StorageModePostgres && config.StorageMode != StorageModeFile {
		return nil, fmt.Errorf("STORAGE_MODE must be %q or %q, got %q",
			StorageModePostgres, StorageModeFile, config.StorageMode)
	}
	if config.StorageMode == StorageModePostgres && config.DatabaseURL == "" {
		return nil, fmt.Errorf("STORAGE_MODE=postgres requires DATABASE_URL")
	}
	if config.DataFile == "" {
		config.DataFile = "orders.json"
	}

	if config.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET must be set")
	}
	if config.AdminUsername == "" || config.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD must be set")
	}

	if config.Port == "" {
		config.Port = "8080"
	}

	return config, nil
}

// SMTPConfigured reports whether an email transport is available. When it is
// not, confirmation emails are logged instead of sent.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != ""
}

// RazorpayConfigured reports whether gateway verification credentials are set.
func (c *Config) RazorpayConfigured() bool {
	return c.RazorpayKeyID != "" && c.RazorpayKeySecret != ""
}
