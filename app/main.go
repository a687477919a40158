// Package main is an entrypoint for application
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime/debug"

	"github.com/jessevdk/go-flags"
	"github.com/subosito/gotenv"
	"golang.org/x/exp/slog"

	"github.com/Semior001/paper2note/app/cmd"
	"github.com/Semior001/paper2note/pkg/logx"
)

var opts struct {
	Note     cmd.Note `group:"note options"`
	JSONLogs bool     `long:"json-logs" env:"JSON_LOGS" description:"turn on json logs"`
	Debug    bool     `long:"dbg" env:"DEBUG" description:"turn on debug mode"`

	Args struct {
		URL string `positional-arg-name:"url" description:"url of the paper page"`
	} `positional-args:"yes" required:"yes"`
}

var version = "unknown"

// envFileVar overrides the location of the env file.
const envFileVar = "PAPER2NOTE_ENV_FILE"

func getVersion() string {
	v, ok := debug.ReadBuildInfo()
	if !ok || v.Main.Version == "(devel)" {
		return version
	}
	return v.Main.Version
}

func main() {
	if err := loadEnvFile(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load env file: %v\n", err)
		os.Exit(1)
	}

	p := flags.NewParser(&opts, flags.Default)
	p.Usage = "[OPTIONS] url"

	if _, err := p.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	setupLog()
	slog.Debug("paper2note started", slog.String("version", getVersion()))

	if err := opts.Note.Execute(opts.Args.URL); err != nil {
		slog.Error("failed to execute command", slog.Any("err", err))
		os.Exit(1)
	}
}

// loadEnvFile exports variables from the env file unless they are already
// set. A missing file is not an error.
func loadEnvFile() error {
	path := "config.env"
	if v := os.Getenv(envFileVar); v != "" {
		path = v
	}

	if err := gotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}

	return nil
}

func setupLog() {
	handler := slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelInfo,
		ReplaceAttr: nil,
	}

	if opts.Debug {
		handler.Level = slog.LevelDebug
		handler.AddSource = true
	}

	var h slog.Handler = handler.NewTextHandler(os.Stderr)
	if opts.JSONLogs {
		h = handler.NewJSONHandler(os.Stderr)
	}

	slog.SetDefault(slog.New(&logx.Chain{
		Middleware: []logx.Middleware{logx.RunID},
		Handler:    h,
	}))
}
