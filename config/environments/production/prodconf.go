// Package production contains production configuration of the app
package production

import (
	"organizer/config"

	"github.com/spf13/viper"
)

type prodconf struct {
	v *viper.Viper
}

// New reads settings from v, falling back to production defaults.
func New(v *viper.Viper) config.AppConfiger {
	v.SetDefault("port", "8080")
	v.SetDefault("db_url", "/var/lib/organizer/storage/organizer.db")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("log_file", "/var/log/organizer/organizer.log")
	v.SetDefault("log_max_size_mb", 100)
	v.SetDefault("log_max_backups", 10)
	v.SetDefault("log_max_age_days", 30)
	return prodconf{v: v}
}

func (pc prodconf) GetPort() string       { return pc.v.GetString("port") }
func (pc prodconf) GetDBURL() string      { return pc.v.GetString("db_url") }
func (pc prodconf) GetLogLevel() string   { return pc.v.GetString("log_level") }
func (pc prodconf) GetLogFormat() string  { return pc.v.GetString("log_format") }
func (pc prodconf) GetLogFile() string    { return pc.v.GetString("log_file") }
func (pc prodconf) GetLogMaxSizeMB() int  { return pc.v.GetInt("log_max_size_mb") }
func (pc prodconf) GetLogMaxBackups() int { return pc.v.GetInt("log_max_backups") }
func (pc prodconf) GetLogMaxAgeDays() int { return pc.v.GetInt("log_max_age_days") }
