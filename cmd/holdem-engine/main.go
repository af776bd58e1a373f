package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	LogLevel string           `default:"info" help:"Log level (debug|info|warn|error)"`

	Play   PlayCmd   `cmd:"" help:"Run hands between built-in bots"`
	Verify VerifyCmd `cmd:"" help:"Replay recorded hands and check their declared results"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-engine"),
		kong.Description("No-limit Texas hold'em hand engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(newLogger(cli.LogLevel))
	ctx.FatalIfErrorf(err)
}

func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}
