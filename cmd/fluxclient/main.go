package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/optmatch"
)

// settings holds everything the client needs to start, populated from the
// command line on top of the defaults below.
type settings struct {
	Server    string
	Reverse   bool
	Width     int
	Height    int
	LogLevel  string
	LogFormat string
}

func defaultSettings() settings {
	return settings{
		Server:    "localhost:10000",
		Width:     1280,
		Height:    1024,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// main is the entrypoint for the fluxclient demo.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*optmatch.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW, errW io.Writer, args []string) error {
	cfg := defaultSettings()

	table := optmatch.Table{
		optmatch.StringOpt("server", "address of server to connect to", &cfg.Server),
		optmatch.BoolOpt("reverseFluxPolarity", "operate with flux polarity reversed", &cfg.Reverse),
		optmatch.DimensionsOpt("screen", "screen width and height in pixels", &cfg.Width, &cfg.Height),
		optmatch.NewOpt(`--logLevel=(debug|info|warn|error)`, "set the logging level", func(groups []string) {
			cfg.LogLevel = groups[1]
		}),
		optmatch.NewOpt(`--logFormat=(text|json)`, "log output format", func(groups []string) {
			cfg.LogFormat = groups[1]
		}),
	}

	parser := optmatch.NewParser(
		optmatch.WithOutput(outW),
		optmatch.WithErrOutput(errW),
		optmatch.WithProgram("fluxclient"),
	)
	if !parser.Parse(args, table) {
		return &optmatch.ExitError{Code: 2, Message: "invalid command line"}
	}

	logger := newLogger(cfg, errW)
	logger.Debug("Command line parsed successfully.", "settings", cfg)

	fmt.Fprintf(outW, "server address:  %s\n", cfg.Server)
	fmt.Fprintf(outW, "flux polarity:   %s\n", polarity(cfg.Reverse))
	fmt.Fprintf(outW, "screen size:     %dx%d\n", cfg.Width, cfg.Height)
	return nil
}

func polarity(reversed bool) string {
	if reversed {
		return "reversed"
	}
	return "normal"
}
