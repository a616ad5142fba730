package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Printer   PrinterConfig
	Currency  CurrencyConfig
	JWT       JWTConfig
	Station   StationConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// PrinterConfig selects the transport the receipt bytes are written to.
// Type is one of usb, network, file, or none; Target is the device path,
// TCP address, or spool path for the chosen type.
type PrinterConfig struct {
	Type   string
	Target string
	Width  int
}

// CurrencyConfig is the currency descriptor stamped on receipts. The core
// only reads the display name; it never validates or converts.
type CurrencyConfig struct {
	Name   string
	Symbol string
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

// StationConfig is the single print-station credential. There is no user
// store in this service; one configured station id plus a bcrypt password
// hash is the whole directory.
type StationConfig struct {
	ID           string
	PasswordHash string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "tillprint-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_TARGET", "")
	viper.SetDefault("PRINTER_WIDTH", 48)
	viper.SetDefault("CURRENCY_NAME", "USD")
	viper.SetDefault("CURRENCY_SYMBOL", "$")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("STATION_ID", "station-01")
	viper.SetDefault("STATION_PASSWORD_HASH", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_RPS", 10.0)
	viper.SetDefault("RATE_LIMIT_BURST", 20)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Printer: PrinterConfig{
			Type:   viper.GetString("PRINTER_TYPE"),
			Target: viper.GetString("PRINTER_TARGET"),
			Width:  viper.GetInt("PRINTER_WIDTH"),
		},
		Currency: CurrencyConfig{
			Name:   viper.GetString("CURRENCY_NAME"),
			Symbol: viper.GetString("CURRENCY_SYMBOL"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
			Expiry: time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
		},
		Station: StationConfig{
			ID:           viper.GetString("STATION_ID"),
			PasswordHash: viper.GetString("STATION_PASSWORD_HASH"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
	}
}
