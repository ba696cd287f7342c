package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	ListenAddr  string
	SecretKey   string
	DatabaseURL string
	Email       EmailConfig
}

// EmailConfig holds the credentials for the outbound SMTP relay. Any of
// these being empty only breaks the contact form, not the rest of the app.
type EmailConfig struct {
	Host      string
	FromEmail string
	Password  string
}

func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("LISTEN_ADDR", ":5000")
	v.SetDefault("SECRET_KEY", "dev-secret-change-me")
	v.SetDefault("DATABASE_URL", "blog.db")

	return &Config{
		ListenAddr:  v.GetString("LISTEN_ADDR"),
		SecretKey:   v.GetString("SECRET_KEY"),
		DatabaseURL: v.GetString("DATABASE_URL"),
		Email: EmailConfig{
			Host:      v.GetString("SMTP_HOST"),
			FromEmail: v.GetString("FROM_EMAIL"),
			Password:  v.GetString("SMTP_PASSWORD"),
		},
	}
}
