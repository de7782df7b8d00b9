package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"log"
	"os"
	"time"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	WSServer   WSServer `yaml:"ws_server"`
	Pusher     Pusher   `yaml:"pusher"`
	Game       Game     `yaml:"game"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type WSServer struct {
	Address     string        `yaml:"address" env:"WS_ADDRESS" env-default:"localhost:8081"`
	PublishURL  string        `yaml:"publish_url" env:"WS_PUBLISH_URL" env-default:"ws://localhost:8081/ws"`
	Timeout     time.Duration `yaml:"timeout" env:"WS_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"WS_IDLE_TIMEOUT" env-default:"60s"`
}

// Pusher holds the credentials of the hosted event channel. When they are
// absent the API falls back to the bundled ws server.
type Pusher struct {
	AppID   string `yaml:"app_id" env:"PUSHER_APP_ID"`
	Key     string `yaml:"key" env:"PUSHER_KEY"`
	Secret  string `yaml:"secret" env:"PUSHER_SECRET"`
	Cluster string `yaml:"cluster" env:"PUSHER_CLUSTER" env-default:"eu"`
	Secure  bool   `yaml:"secure" env:"PUSHER_SECURE" env-default:"true"`
}

func (p Pusher) Enabled() bool {
	return p.AppID != "" && p.Key != "" && p.Secret != ""
}

type Game struct {
	StartingBalance   float64       `yaml:"starting_balance" env:"GAME_STARTING_BALANCE" env-default:"1000"`
	ChipDenominations []float64     `yaml:"chip_denominations" env:"GAME_CHIP_DENOMINATIONS" env-default:"0.1,0.5,1,5,10,25,100"`
	RevealInterval    time.Duration `yaml:"reveal_interval" env:"GAME_REVEAL_INTERVAL" env-default:"600ms"`
	SessionTTL        time.Duration `yaml:"session_ttl" env:"GAME_SESSION_TTL" env-default:"30m"`
}

// MustLoad reads the config file named by CONFIG_PATH, or falls back to
// environment variables when CONFIG_PATH is not set.
func MustLoad() *Config {
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err)
		}

		return &cfg
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
