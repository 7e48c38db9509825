package config

import (
	"time"

	"github.com/dmitrijs2005/planwise/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Only -a, -f and -r are considered; everything else in args is ignored.
// Panics on malformed values.
func parseFlags(cfg *Config, args []string) {
	fs, filtered := flagx.NewFilteredSet("client", args, "-a", "-f", "-r")

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.LocalDatabasePath, "f", cfg.LocalDatabasePath, "local database file")
	requestTimeout := fs.Int("r", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(filtered); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
