package config

import (
	"log/slog"
	"time"
)

type App struct {
	Name     string     `env:"APP_NAME"      envDefault:"namevalue"`
	Version  string     `env:"APP_VERSION"   envDefault:"dev"`
	LogLevel slog.Level `env:"APP_LOG_LEVEL" envDefault:"info"`
}

type HTTP struct {
	ListenAddress   string        `env:"HTTP_LISTEN_ADDRESS"   envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type Probe struct {
	ListenAddress string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
}

// Animation счётчик капитализации на странице и в терминале.
type Animation struct {
	Duration      time.Duration `env:"ANIMATION_DURATION"       envDefault:"1500ms"`
	FrameInterval time.Duration `env:"ANIMATION_FRAME_INTERVAL" envDefault:"16ms"`
}
