package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

var App *AppConfig

// AppConfig holds the non-connection settings of the service.
type AppConfig struct {
	Port        string `envconfig:"PORT" default:"3000"`
	Timezone    string `envconfig:"TIMEZONE" default:"Europe/Madrid"`
	LockRetries int    `envconfig:"LOCK_RETRIES" default:"3"`
	LimitsFile  string `envconfig:"LIMITS_FILE" default:"config/limits.yml"`

	location *time.Location
}

func LoadApp() error {
	app := &AppConfig{}
	if err := envconfig.Process("coopwatt", app); err != nil {
		return err
	}

	location, err := time.LoadLocation(app.Timezone)
	if err != nil {
		return err
	}
	app.location = location

	App = app
	return nil
}

// Location is the tenant-local timezone used for daily/monthly limit windows.
func (a *AppConfig) Location() *time.Location {
	if a.location == nil {
		return time.UTC
	}

	return a.location
}
