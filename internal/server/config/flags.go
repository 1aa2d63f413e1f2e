package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/gophadmin/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-s string   JWT HMAC secret key
//	-k string   super admin key for signup
//	-t int      access token validity, minutes
//	-seed       preload demo users (use -seed=true when followed by a value)
//
// Duration flags are accepted as integers in minutes and then converted
// to time.Duration values.
func parseFlags(config *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-k", "-t", "-seed"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.SuperAdminKey, "k", config.SuperAdminKey, "super admin key")
	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	fs.BoolVar(&config.Seed, "seed", config.Seed, "preload demo users")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	tSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			tSet = true
		}
	})
	if !tSet {
		return nil
	}
	if *accessTokenValidityDuration <= 0 {
		return fmt.Errorf("parse flags: access token validity must be positive, got %d", *accessTokenValidityDuration)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	return nil
}
