package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"organizer/app"
	"organizer/config"
	"organizer/config/appconf"
	"organizer/internal/dbconn"
	"organizer/internal/logging"
	"organizer/version"

	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := log.StandardLogger()
	if err := logging.Setup(logger, logging.Options{
		Level:      appconf.LogLevel(),
		Format:     appconf.LogFormat(),
		File:       appconf.LogFile(),
		MaxSizeMB:  appconf.LogMaxSizeMB(),
		MaxBackups: appconf.LogMaxBackups(),
		MaxAgeDays: appconf.LogMaxAgeDays(),
	}); err != nil {
		log.Fatal("logging setup failed: ", err)
	}

	db, err := dbconn.Open(
		dbconn.WithURL(appconf.DBURL()),
		dbconn.WithLogger(logging.GormLogger(logger)),
	)
	if err != nil {
		log.Fatal("db connection failed: ", err)
	}

	defer dbconn.Close(db)

	container := app.NewContainer(db)

	if err := container.Migrate(); err != nil {
		log.Fatal("migration failed: ", err)
	}

	e := config.NewServer(container, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := fmt.Sprintf(":%s", appconf.Port())
		log.WithFields(log.Fields{"addr": addr, "version": version.Version}).Info("starting organizer")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server stopped")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
