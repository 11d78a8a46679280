package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort  string    `yaml:"http-port" env:"HTTP_PORT" env-default:"3000"`
	StaticDir string    `yaml:"static-dir" env:"STATIC_DIR" env-default:"public"`
	Game      Game      `yaml:"game"`
	WebSocket WebSocket `yaml:"websocket"`
	Redis     Redis     `yaml:"redis"`
}

type Game struct {
	Radius     int           `yaml:"radius" env:"GAME_RADIUS" env-default:"4"`
	ResetDelay time.Duration `yaml:"reset-delay" env:"GAME_RESET_DELAY" env-default:"5s"`
}

type WebSocket struct {
	SendBuffer        int     `yaml:"send-buffer" env:"WS_SEND_BUFFER" env-default:"16"`
	MessagesPerSecond float64 `yaml:"messages-per-second" env:"WS_MESSAGES_PER_SECOND" env-default:"10"`
	Burst             int     `yaml:"burst" env:"WS_BURST" env-default:"20"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file, environment variables take precedence.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" || that.Port == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
