// Package dbconn opens the GORM connection for the configured database URL.
// URLs starting with postgres:// or postgresql:// go to PostgreSQL through
// lib/pq; anything else is treated as a SQLite URL.
package dbconn

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DBConf struct {
	URL         string
	MaxIdle     int
	MaxOpen     int
	MaxLifetime time.Duration
	Logger      logger.Interface
}

type DBOpts func(*DBConf)

func NewConf() *DBConf {
	return &DBConf{
		URL:         "file:organizer.db",
		MaxIdle:     25,
		MaxOpen:     25,
		MaxLifetime: 300 * time.Second,
		Logger:      logger.Discard,
	}
}

func WithURL(url string) DBOpts {
	return func(d *DBConf) {
		d.URL = url
	}
}

func WithMaxIdle(idle int) DBOpts {
	return func(d *DBConf) {
		d.MaxIdle = idle
	}
}

func WithMaxOpen(open int) DBOpts {
	return func(d *DBConf) {
		d.MaxOpen = open
	}
}

func WithMaxLifetime(lifetime time.Duration) DBOpts {
	return func(d *DBConf) {
		d.MaxLifetime = lifetime
	}
}

func WithLogger(l logger.Interface) DBOpts {
	return func(d *DBConf) {
		d.Logger = l
	}
}

// Open returns a new connection pool. The caller owns it and must Close it.
func Open(options ...DBOpts) (*gorm.DB, error) {
	dbConf := NewConf()
	for _, o := range options {
		o(dbConf)
	}

	if strings.TrimSpace(dbConf.URL) == "" {
		return nil, errors.New("database URL is empty")
	}

	db, err := gorm.Open(Dialector(dbConf.URL), &gorm.Config{Logger: dbConf.Logger})
	if err != nil {
		return nil, err
	}

	sdb, err := db.DB()
	if err != nil {
		return nil, err
	}

	sdb.SetMaxIdleConns(dbConf.MaxIdle)
	sdb.SetMaxOpenConns(dbConf.MaxOpen)
	sdb.SetConnMaxLifetime(dbConf.MaxLifetime)

	if err := sdb.Ping(); err != nil {
		sdb.Close()
		return nil, err
	}

	return db, nil
}

// Dialector picks the GORM dialector for url.
func Dialector(url string) gorm.Dialector {
	if IsPostgres(url) {
		return postgres.New(postgres.Config{
			DriverName: "postgres",
			DSN:        url,
		})
	}
	return sqlite.Open(url)
}

func IsPostgres(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}

// Ping checks that the database behind db still answers.
func Ping(ctx context.Context, db *gorm.DB) error {
	sdb, err := db.DB()
	if err != nil {
		return err
	}
	return sdb.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sdb, err := db.DB()
	if err != nil {
		return err
	}
	return sdb.Close()
}
