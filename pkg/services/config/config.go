package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	DefaultAPIVersion = "3.24"
	DefaultTimeout    = 60 * time.Second
	DefaultProfile    = "DEFAULT"

	// AutoAPIVersion asks the server for its REST API version before signing in.
	AutoAPIVersion = "auto"

	envPrefix = "tableau"
)

// Config holds everything needed to talk to one site. It is built once at start-up.
type Config struct {
	ServerAddress string        `mapstructure:"server" validate:"required,url"`
	Site          string        `mapstructure:"site"` // empty selects the default site
	TokenName     string        `mapstructure:"token_name" validate:"required"`
	TokenSecret   string        `mapstructure:"token_secret" validate:"required"`
	APIVersion    string        `mapstructure:"api_version" validate:"required"`
	Timeout       time.Duration `mapstructure:"timeout" validate:"gt=0"`
	LogLevel      string        `mapstructure:"log_level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
}

// SiteURL is the browser address of the site, used in listings.
func (c Config) SiteURL() string {
	return fmt.Sprintf("%s#/%s", c.ServerAddress, c.Site)
}

type LoadOptions struct {
	ProfilePath string
	Profile     string
	EnvFile     string
}

// Load reads the configuration. Precedence, highest first: environment (TABLEAU_*),
// variables from the .env file, the selected profile of the ini file, defaults.
// Missing files are skipped.
func Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	logger := zerolog.Ctx(ctx)

	if opts.EnvFile != "" {
		err := godotenv.Load(opts.EnvFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			logger.Debug().Str("path", opts.EnvFile).Msg("no env file found")
		case err != nil:
			return nil, fmt.Errorf("failed to load env file %s: %w", opts.EnvFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("server", "")
	v.SetDefault("site", "")
	v.SetDefault("token_name", "")
	v.SetDefault("token_secret", "")
	v.SetDefault("api_version", DefaultAPIVersion)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("log_level", "")

	if opts.ProfilePath != "" {
		if err := applyProfile(ctx, v, opts.ProfilePath, opts.Profile); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.ServerAddress = strings.TrimRight(cfg.ServerAddress, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyProfile(ctx context.Context, v *viper.Viper, path, profile string) error {
	logger := zerolog.Ctx(ctx)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug().Str("path", path).Msg("no profile file found")
			return nil
		}
		return fmt.Errorf("failed to stat profile file %s: %w", path, err)
	}

	registry, err := NewRegistry(path)
	if err != nil {
		return fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	if profile == "" {
		profile = DefaultProfile
	}
	values, err := registry.GetProfile(ctx, profile)
	if err != nil {
		profiles, _ := registry.GetProfiles(ctx)
		return fmt.Errorf("%w, available profiles: %v", err, profiles)
	}

	for key, value := range values {
		v.SetDefault(key, value)
	}
	logger.Debug().Str("path", path).Str("profile", profile).Msg("profile loaded")
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	val.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return val
}

// Validate reports every missing or malformed value at once.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	problems := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		env := strings.ToUpper(envPrefix + "_" + e.Field())
		switch e.Tag() {
		case "required":
			problems = append(problems, fmt.Sprintf("%s is required (set %s or the profile key)", e.Field(), env))
		case "url":
			problems = append(problems, fmt.Sprintf("%s must be a valid URL", e.Field()))
		case "oneof":
			problems = append(problems, fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param()))
		default:
			problems = append(problems, fmt.Sprintf("%s failed %q", e.Field(), e.Tag()))
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}
