package internal

import (
	"fmt"
	"time"

	"chat-stats/analytics"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

type Config struct {
	LogLevel           string `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	TopWords           int    `env:"TOP_WORDS,default=20" validate:"min=1,max=1000"`
	TopUsers           int    `env:"TOP_USERS,default=5" validate:"min=1"`
	TopEmojis          int    `env:"TOP_EMOJIS,default=10" validate:"min=1"`
	MaxTranscriptBytes int64  `env:"MAX_TRANSCRIPT_BYTES,default=52428800" validate:"min=1"`
	Timezone           string `env:"TIMEZONE,default=UTC" validate:"required"`
	Colours            bool   `env:"COLOURS,default=true"`
}

// LoadConfig reads an optional .env file, then the environment.
func LoadConfig(files ...string) (Config, error) {
	_ = godotenv.Load(files...)
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// Location is the time zone transcript timestamps are read in.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c Config) Limits() analytics.Limits {
	return analytics.Limits{
		Words:  c.TopWords,
		Users:  c.TopUsers,
		Emojis: c.TopEmojis,
	}
}
