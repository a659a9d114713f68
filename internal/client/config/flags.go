package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/cyberdetect/cdetect/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   comma-separated candidate base URLs of the backend
//	-i int      health check interval in seconds
//	-p int      session poll interval in seconds
//	-l string   log level (debug|info|warn|error)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-p", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	endpoints := fs.String("a", strings.Join(cfg.Endpoints, ","), "comma-separated backend base URLs")
	healthInterval := fs.Int("i", int(cfg.HealthCheckInterval.Seconds()), "health check interval (in seconds)")
	pollInterval := fs.Int("p", int(cfg.SessionPollInterval.Seconds()), "session poll interval (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// The interval flags are whole seconds; writing them back unconditionally
	// would truncate a sub-second value set by an earlier source. Only flags
	// the user actually passed may overwrite.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			parts := strings.Split(*endpoints, ",")
			list := make([]string, 0, len(parts))
			for _, p := range parts {
				if p = strings.TrimSpace(p); p != "" {
					list = append(list, p)
				}
			}
			if len(list) > 0 {
				cfg.Endpoints = list
			}
		case "i":
			cfg.HealthCheckInterval = time.Duration(*healthInterval) * time.Second
		case "p":
			cfg.SessionPollInterval = time.Duration(*pollInterval) * time.Second
		}
	})
}
