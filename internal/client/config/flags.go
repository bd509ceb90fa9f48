package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/closet/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   closet API base URL
//	-t int      request timeout (seconds, 0 = none)
//	-n int      notice display time (seconds)
//	-l string   log level
//	-f string   log format
//
// os.Args is filtered with flagx.FilterArgs first, so -c/-config (handled by
// parseFile) do not trip this flag set.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-n", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "closet API base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds, 0 = none)")
	notice := fs.Int("n", int(cfg.NoticeDuration.Seconds()), "notice display time (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format: text, json, zap")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["t"] {
		cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	}
	if set["n"] {
		cfg.NoticeDuration = time.Duration(*notice) * time.Second
	}
}
