package config

import "time"

// Bot без токена бот не запускается.
type Bot struct {
	Token          string        `env:"BOT_TOKEN"           json:"-"`
	PrivateOnly    bool          `env:"BOT_PRIVATE_ONLY"    envDefault:"true"`
	PollingTimeout int           `env:"BOT_POLLING_TIMEOUT" envDefault:"60"`
	RequestTimeout time.Duration `env:"BOT_REQUEST_TIMEOUT" envDefault:"75s"`
}

func (b Bot) Enabled() bool {
	return b.Token != ""
}
