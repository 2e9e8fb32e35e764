package config

import "time"

// Export выгрузка карточки в PNG через headless Chrome.
type Export struct {
	Enabled     bool          `env:"EXPORT_ENABLED"      envDefault:"true"`
	ChromePath  string        `env:"EXPORT_CHROME_PATH"`
	Headless    bool          `env:"EXPORT_HEADLESS"     envDefault:"true"`
	MaxParallel int           `env:"EXPORT_MAX_PARALLEL" envDefault:"2"`
	Timeout     time.Duration `env:"EXPORT_TIMEOUT"      envDefault:"15s"`
	CacheTTL    time.Duration `env:"EXPORT_CACHE_TTL"    envDefault:"10m"`

	// Прогрев кэша карточками известных имён.
	WarmUp         bool          `env:"EXPORT_WARM_UP"          envDefault:"false"`
	WarmUpInterval time.Duration `env:"EXPORT_WARM_UP_INTERVAL" envDefault:"500ms"`
	WarmUpPeriod   time.Duration `env:"EXPORT_WARM_UP_PERIOD"   envDefault:"5m"`
}
