// Package appconf contains app related configurations
package appconf

import (
	"os"
	"sync"

	"organizer/config"
	devconf "organizer/config/environments/development"
	prodconf "organizer/config/environments/production"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every setting read from the environment, e.g.
// ORGANIZER_DB_URL.
const EnvPrefix = "ORGANIZER"

var (
	appconf config.AppConfiger
	once    sync.Once
)

// New builds the configuration for env ("production" or anything else for
// development). When configFile is set it is read before the environment,
// which still wins.
func New(env, configFile string) (config.AppConfiger, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	switch env {
	case "production":
		return prodconf.New(v), nil
	default:
		return devconf.New(v), nil
	}
}

// load runs on first use so that .env files loaded at init time are visible.
func load() config.AppConfiger {
	once.Do(func() {
		env := os.Getenv("APP_ENV")
		configFile := os.Getenv(EnvPrefix + "_CONFIG")

		c, err := New(env, configFile)
		if err != nil {
			log.WithError(err).WithField("config_file", configFile).Warn("ignoring unreadable config file")
			c, _ = New(env, "")
		}
		appconf = c
	})
	return appconf
}

func Port() string {
	return load().GetPort()
}

func DBURL() string {
	return load().GetDBURL()
}

func LogLevel() string {
	return load().GetLogLevel()
}

func LogFormat() string {
	return load().GetLogFormat()
}

func LogFile() string {
	return load().GetLogFile()
}

func LogMaxSizeMB() int {
	return load().GetLogMaxSizeMB()
}

func LogMaxBackups() int {
	return load().GetLogMaxBackups()
}

func LogMaxAgeDays() int {
	return load().GetLogMaxAgeDays()
}
