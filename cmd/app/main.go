package main

import (
	"rentcar/config"
	"rentcar/di"
	"rentcar/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
