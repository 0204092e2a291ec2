package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	appenv "github.com/Elzoidbergo/HostPilot/internal/env"
)

type Config struct {
	Port     string             `env:"PORT" envDefault:"8080"`
	Env      appenv.Environment `env:"ENV" envDefault:"development"`
	Lodgify  Lodgify            `envPrefix:"LODGIFY_"`
	Notify   Notify             `envPrefix:"NOTIFY_"`
	Database Database           `envPrefix:"DATABASE_"`
	Redis    Redis              `envPrefix:"REDIS_"`
}

type Lodgify struct {
	APIKey  string `env:"API_KEY,required"`
	BaseURL string `env:"BASE_URL" envDefault:"https://api.lodgify.com"`
}

type Notify struct {
	LeadTimeHours float64 `env:"LEAD_TIME_HOURS" envDefault:"72"`
	QueueKey      string  `env:"QUEUE_KEY" envDefault:"hostpilot:cleaner:tasks"`
}

type Database struct {
	URL string `env:"URL,required"`
}

type Redis struct {
	URL string `env:"URL" envDefault:"redis://localhost:6379/0"`
}

// LeadTime converts the configured lead-time hours into a duration.
// Fractional hours are allowed.
func (c Config) LeadTime() time.Duration {
	return time.Duration(c.Notify.LeadTimeHours * float64(time.Hour))
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}

// CLIConfig is the subset of settings the hostpilot command line tool
// needs. It omits the datastores so the tool runs anywhere with just
// an API key.
type CLIConfig struct {
	WebhookBaseURL string  `env:"WEBHOOK_BASE_URL"`
	Lodgify        Lodgify `envPrefix:"LODGIFY_"`
}

func ReadCLI() (CLIConfig, error) {
	return env.ParseAs[CLIConfig]()
}
