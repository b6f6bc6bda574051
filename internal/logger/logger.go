package logger

import "go.uber.org/zap"

// Log is the shared engine logger. Call Init before using it.
var Log *zap.Logger

func Init() {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	Log = log
}
