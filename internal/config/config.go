package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string `yaml:"env" env:"ENV" env-default:"prod"`
	HTTPServer  `yaml:"http_server"`
	DBUser      string `yaml:"db_user" env:"DB_USER" env-required:"true"`
	DBPassword  string `yaml:"db_password" env:"DB_PASSWORD" env-default:""`
	DBHost      string `yaml:"db_host" env:"DB_HOST" env-default:"localhost"`
	DBPort      int    `yaml:"db_port" env:"DB_PORT" env-default:"3306"`
	DBName      string `yaml:"db_name" env:"DB_NAME" env-required:"true"`
	ParseTime   bool   `yaml:"parse_time" env-default:"true"`
	HorizonDays int    `yaml:"horizon_days" env-default:"90"`

	AdminLogin string `yaml:"admin_login" env:"ADMIN_LOGIN"`
	AdminPass  string `yaml:"admin_pass" env:"ADMIN_PASS"`

	Assistant Assistant `yaml:"assistant"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:4001"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Assistant struct {
	Provider string        `yaml:"provider" env:"ASSISTANT_PROVIDER" env-default:"openai"`
	Model    string        `yaml:"model" env:"ASSISTANT_MODEL"`
	BaseURL  string        `yaml:"base_url" env:"ASSISTANT_BASE_URL"`
	APIKey   string        `yaml:"api_key" env:"ASSISTANT_API_KEY"`
	Timeout  time.Duration `yaml:"timeout" env-default:"30s"`
}

func MustConfig() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/local.yaml"
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
