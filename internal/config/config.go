package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	WhatsApp    WhatsApp    `mapstructure:",squash"`
	ExpirySweep ExpirySweep `mapstructure:",squash"`
	Booking     Booking     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	SiteURL  string `mapstructure:"site_url"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type WhatsApp struct {
	SendBaseURL string `mapstructure:"whatsapp_send_base_url"`
}

type ExpirySweep struct {
	CronSchedule string `mapstructure:"expiry_sweep_cron"`
	Enabled      bool   `mapstructure:"expiry_sweep_enabled"`
}

type Booking struct {
	BackgroundWriteTimeoutSeconds int `mapstructure:"booking_background_write_timeout_seconds"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/umrah_marketplace")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("SITE_URL", "https://safarind.id")
	viper.SetDefault("WHATSAPP_SEND_BASE_URL", "https://api.whatsapp.com/send")

	// Lazy expiry on read keeps listings correct by itself; the sweep is an
	// optimization and stays off unless explicitly enabled.
	viper.SetDefault("EXPIRY_SWEEP_CRON", "0 1 * * *")
	viper.SetDefault("EXPIRY_SWEEP_ENABLED", false)

	viper.SetDefault("BOOKING_BACKGROUND_WRITE_TIMEOUT_SECONDS", 30)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile loads the .env file from the usual locations via godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from:", location)
			return
		}
	}

	logrus.Info("no .env file found, relying on environment variables")
}
