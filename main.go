package main

import (
	"log/slog"
	"os"

	"imgenhance/histo"
	"imgenhance/parallel"
	"imgenhance/process"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Workers   int    `help:"Number of pictures processed at once. 0 uses every CPU" default:"0"`
	LogLevel  string `help:"Log level" enum:"debug,info,warn,error" default:"info"`
	LogFormat string `help:"Log format" enum:"text,json" default:"text"`

	Enhance process.CLICmd `cmd:"" help:"Binarize, add noise, denoise and equalize pictures"`
	Hist    histo.CLICmd   `cmd:"" help:"Report per channel histogram statistics"`
}

func (c *CLI) AfterApply() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return err
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if c.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("imgenhance"),
		kong.Description("Spatial and statistical picture enhancement"),
		kong.UsageOnError(),
	)

	pool := parallel.Start(cli.Workers)
	slog.Debug("running", "command", kctx.Command(), "workers", pool.Size)

	if err := kctx.Run(pool.Do, pool.Wait); err != nil {
		slog.Error("command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
