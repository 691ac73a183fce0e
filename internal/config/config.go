package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel string  `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	LogFile  string  `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:""`
	Console  Console `yaml:"console"`
}

type Console struct {
	Prompt      string `yaml:"prompt" env-default:"tictactoe" validate:"required,max=32"`
	HistoryFile string `yaml:"history-file" env-default:".tictactoe_history"`
	// Color is one of auto, always or never. auto enables colors on a terminal.
	Color string `yaml:"color" env:"TICTACTOE_COLOR" env-default:"auto" validate:"oneof=auto always never"`
}

var validate = validator.New()

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the file at path, applies env overrides and validates the result.
// An empty path reads the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}

	if err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	err := validate.Struct(that)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	details := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "oneof":
			details = append(details, fmt.Sprintf("%s must be one of [%s]", fieldErr.Namespace(), fieldErr.Param()))
		case "required":
			details = append(details, fmt.Sprintf("%s is required", fieldErr.Namespace()))
		case "max":
			details = append(details, fmt.Sprintf("%s must be at most %s characters", fieldErr.Namespace(), fieldErr.Param()))
		default:
			details = append(details, fmt.Sprintf("%s failed on %s", fieldErr.Namespace(), fieldErr.Tag()))
		}
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(details, "; "))
}
