package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisBookingDB int    `mapstructure:"REDIS_BOOKING_DB"`
	RedisChatDB    int    `mapstructure:"REDIS_CHAT_DB"`

	// Gemini API key for the AI receptionist's general-inquiry replies.
	// Leave empty to run fully rule-based.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Salon contact details surfaced in chat replies.
	SalonName     string `mapstructure:"SALON_NAME"`
	SalonAddress  string `mapstructure:"SALON_ADDRESS"`
	SalonPhone    string `mapstructure:"SALON_PHONE"`
	SalonWhatsApp string `mapstructure:"SALON_WHATSAPP"`
	SalonHours    string `mapstructure:"SALON_HOURS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_BOOKING_DB", 0)
	viper.SetDefault("REDIS_CHAT_DB", 1)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("SALON_NAME", "VIP Queens Salon")
	viper.SetDefault("SALON_ADDRESS", "Ronald Ngala Street, RNG Plaza 2nd floor S41, Nairobi, Kenya")
	viper.SetDefault("SALON_PHONE", "0718 779 129")
	viper.SetDefault("SALON_WHATSAPP", "254718779129")
	viper.SetDefault("SALON_HOURS", "Mon-Sat: 6:00 AM - 10:00 PM, Sun: 9:00 AM - 6:00 PM")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
