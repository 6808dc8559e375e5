package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	AuthModeHeader = "header"
	AuthModeJWT    = "jwt"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HttpServer `yaml:"http_server" env-required:"true"`
	Storage    Storage    `yaml:"storage"`
	Policy     Policy     `yaml:"policy"`
	AI         AI         `yaml:"ai"`
	Auth       Auth       `yaml:"auth"`
	Audit      Audit      `yaml:"audit"`
}

type HttpServer struct {
	Address      string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:3000"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env-default:"30s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite"`
	DSN    string `yaml:"dsn" env:"DATABASE_URL" env-default:"github_rebac.db"`
}

// Policy configures the Permit.io client. AllowOnPolicyError is the degraded
// mode: when set, an unreachable policy engine lets guarded requests through.
type Policy struct {
	PDPURL             string        `yaml:"pdp_url" env:"PERMIT_PDP_URL" env-default:"http://localhost:7766"`
	APIURL             string        `yaml:"api_url" env:"PERMIT_API_URL" env-default:"https://api.permit.io"`
	APIKey             string        `yaml:"api_key" env:"PERMIT_API_KEY"`
	Project            string        `yaml:"project" env:"PERMIT_PROJECT" env-default:"default"`
	Environment        string        `yaml:"environment" env:"PERMIT_ENV" env-default:"dev"`
	Tenant             string        `yaml:"tenant" env-default:"default"`
	Timeout            time.Duration `yaml:"timeout" env-default:"5s"`
	Retries            int           `yaml:"retries" env-default:"2"`
	AllowOnPolicyError bool          `yaml:"allow_on_policy_error" env:"ALLOW_ON_POLICY_ERROR" env-default:"false"`
}

type AI struct {
	APIKey  string        `yaml:"api_key" env:"GEMINI_API_KEY"`
	Model   string        `yaml:"model" env-default:"gemini-2.0-flash-exp"`
	BaseURL string        `yaml:"base_url" env-default:"https://generativelanguage.googleapis.com"`
	Timeout time.Duration `yaml:"timeout" env-default:"30s"`
}

type Auth struct {
	Mode      string `yaml:"mode" env:"AUTH_MODE" env-default:"header"`
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
}

type Audit struct {
	Enabled   bool `yaml:"enabled" env:"AUDIT_ENABLED" env-default:"true"`
	QueueSize int  `yaml:"queue_size" env-default:"256"`
}

// MustLoad panics if config can not be found.
func MustLoad() *Config {
	// .env is optional; values already in the environment win.
	_ = godotenv.Load()

	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is required")
	}

	if _, err := os.Stat(configPath); err != nil {
		panic("config file does not exist:" + configPath)
	}

	cfg, err := Load(configPath)
	if err != nil {
		panic("failed to read config: " + err.Error())
	}

	return cfg
}

// Load reads the config file at path and applies env overrides.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// fetchConfigPath fetches config path from cmd flag or environment variable.
// flag > env > default.
// default = "".
func fetchConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "Path to the configuration file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	return path
}
