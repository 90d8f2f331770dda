// Package config loads runtime configuration: built-in defaults, an
// optional per-environment YAML file, then environment variable
// overrides, in that order.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."
	defaultEnv  = "dev"

	// Fallback values for secret and port mirror the reference backend.
	// Acceptable only outside production; override both via environment.
	defaultSecretKey = "supersecretkey"
	defaultPort      = 5000
)

// Log configures the process logger.
type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// Config holds every runtime setting of the service.
type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port       int    `json:"port" yaml:"port"`
		CORSOrigin string `json:"corsOrigin" yaml:"corsOrigin"`
		Timeouts   struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Store struct {
		Path string `json:"path" yaml:"path"`
	} `json:"store" yaml:"store"`

	Auth struct {
		SecretKey    string        `json:"secretKey" yaml:"secretKey"`
		SessionTTL   time.Duration `json:"sessionTtl" yaml:"sessionTtl"`
		BcryptCost   int           `json:"bcryptCost" yaml:"bcryptCost"`
		CookieSecure bool          `json:"cookieSecure" yaml:"cookieSecure"`
	} `json:"auth" yaml:"auth"`
}

// New loads the configuration for the environment named by APP_ENV
// (default "dev"). It never fails on a missing config file; only a
// malformed one is an error.
func New() (*Config, error) {
	return Load(os.Getenv("APP_ENV"), defaultPath)
}

// Load builds a Config for currEnv, searching configPath for an optional
// <currEnv>.yaml.
func Load(currEnv string, configPath ...string) (*Config, error) {
	if currEnv == "" {
		currEnv = defaultEnv
	}

	cfg := defaultConfig(currEnv)
	koanfInstance := koanf.New(".")

	// Optional YAML layer.
	if configFile, found := findConfigFile(currEnv, configPath); found {
		if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s config failed", currEnv)
		}
	}

	// Environment layer: AUTH_SECRETKEY -> auth.secretkey and so on,
	// matched case-insensitively against the struct fields below.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return strings.ReplaceAll(strings.ToLower(k), "_", "."), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func defaultConfig(currEnv string) *Config {
	cfg := new(Config)
	cfg.Env.Env = currEnv
	cfg.Env.ServiceName = "farmgate"
	cfg.Env.Log.Level = "info"
	cfg.HTTP.Port = defaultPort
	cfg.HTTP.CORSOrigin = "http://localhost:5173"
	cfg.Store.Path = "users1.json"
	cfg.Auth.SecretKey = defaultSecretKey
	cfg.Auth.SessionTTL = time.Hour
	cfg.Auth.BcryptCost = 10
	cfg.Auth.CookieSecure = false

	return cfg
}

func findConfigFile(currEnv string, configPath []string) (string, bool) {
	searchPaths := []string{defaultPath}
	pwd, _ := os.Getwd()
	for _, path := range configPath {
		if !filepath.IsAbs(path) {
			path = filepath.Join(pwd, path)
		}
		searchPaths = append(searchPaths, path)
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}
