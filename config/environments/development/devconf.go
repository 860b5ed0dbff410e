// Package development contains development configuration of the app
package development

import (
	"organizer/config"

	"github.com/spf13/viper"
)

type devconf struct {
	v *viper.Viper
}

// New reads settings from v, falling back to development defaults.
func New(v *viper.Viper) config.AppConfiger {
	v.SetDefault("port", "8080")
	v.SetDefault("db_url", "file:organizer.db")
	v.SetDefault("log_level", "debug")
	v.SetDefault("log_format", "text")
	v.SetDefault("log_file", "")
	v.SetDefault("log_max_size_mb", 10)
	v.SetDefault("log_max_backups", 3)
	v.SetDefault("log_max_age_days", 7)
	return devconf{v: v}
}

func (dc devconf) GetPort() string       { return dc.v.GetString("port") }
func (dc devconf) GetDBURL() string      { return dc.v.GetString("db_url") }
func (dc devconf) GetLogLevel() string   { return dc.v.GetString("log_level") }
func (dc devconf) GetLogFormat() string  { return dc.v.GetString("log_format") }
func (dc devconf) GetLogFile() string    { return dc.v.GetString("log_file") }
func (dc devconf) GetLogMaxSizeMB() int  { return dc.v.GetInt("log_max_size_mb") }
func (dc devconf) GetLogMaxBackups() int { return dc.v.GetInt("log_max_backups") }
func (dc devconf) GetLogMaxAgeDays() int { return dc.v.GetInt("log_max_age_days") }
