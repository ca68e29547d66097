package config

import (
	"os"

	"go.uber.org/zap"
)

var Log *zap.SugaredLogger

// InitLogger sets up the process-wide logger. Development mode uses the
// human-readable console encoder; anything else logs structured JSON.
func InitLogger() {
	var logger *zap.Logger
	var err error

	if os.Getenv("APP_ENV") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	Log = logger.Sugar()
}
