package main

import (
	"github.com/feusd-io/hip3-oracles-go/config"
	"github.com/urfave/cli"
)

var (
	logLevel = cli.StringFlag{
		Name:  "log-level",
		Usage: "This flag specifies the logger `level(s)`",
		Value: "*:INFO",
	}
	configurationFile = cli.StringFlag{
		Name:  "config",
		Usage: "The `path` for the main configuration file",
		Value: "config/config.toml",
	}
	logSaveFile = cli.BoolFlag{
		Name:  "log-save",
		Usage: "Boolean option for enabling log saving",
	}
	workingDirectory = cli.StringFlag{
		Name:  "working-directory",
		Usage: "The application will store here the logs",
		Value: "",
	}
	logWithLoggerName = cli.BoolFlag{
		Name:  "log-logger-name",
		Usage: "Boolean option for logger name in the logs",
	}
	disableAnsiColor = cli.BoolFlag{
		Name:  "disable-ansi-color",
		Usage: "Boolean option for disabling ANSI colors in the logging system",
	}
	restApiInterface = cli.StringFlag{
		Name: "rest-api-interface",
		Usage: "The interface `address and port` to which the REST API will attempt to bind. " +
			"To bind to all available interfaces, set this flag to :8080",
		Value: "localhost:8080",
	}
)

func getFlags() []cli.Flag {
	return []cli.Flag{
		logLevel,
		configurationFile,
		logSaveFile,
		workingDirectory,
		logWithLoggerName,
		disableAnsiColor,
		restApiInterface,
	}
}

func getFlagsConfig(ctx *cli.Context) config.ContextFlagsConfig {
	return config.ContextFlagsConfig{
		WorkingDir:        ctx.GlobalString(workingDirectory.Name),
		LogLevel:          ctx.GlobalString(logLevel.Name),
		ConfigurationFile: ctx.GlobalString(configurationFile.Name),
		SaveLogFile:       ctx.GlobalBool(logSaveFile.Name),
		EnableLogName:     ctx.GlobalBool(logWithLoggerName.Name),
		DisableAnsiColor:  ctx.GlobalBool(disableAnsiColor.Name),
		RestApiInterface:  ctx.GlobalString(restApiInterface.Name),
	}
}
