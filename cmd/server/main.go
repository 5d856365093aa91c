package main

import (
	"github.com/ragcourselab/backend/internal/server"
	"github.com/ragcourselab/backend/internal/util"
	"github.com/ragcourselab/backend/pkg/logger"
	"github.com/ragcourselab/backend/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
