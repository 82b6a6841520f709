package config

import (
	"go.uber.org/zap"
)

var Logger *zap.Logger

// InitLogger در محیط production لاگ JSON و در غیر این صورت لاگ توسعه
func InitLogger(env string) (*zap.Logger, error) {
	var err error
	if env == "production" {
		Logger, err = zap.NewProduction()
	} else {
		Logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	Logger.Info("Zap logger initialized", zap.String("env", env))
	return Logger, nil
}
