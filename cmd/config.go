package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables providing the flag defaults.
const (
	EnvInput        = "BILAG_INPUT"
	EnvStartVoucher = "BILAG_START_VOUCHER"
	EnvVerbose      = "BILAG_VERBOSE"
)

// Config holds the defaults of the command flags.
type Config struct {
	Input        string // Nordnet export to read.
	StartVoucher int    // number of the first voucher.
	Verbose      bool
}

// DefaultConfig is the configuration without any environment.
func DefaultConfig() Config {
	return Config{Input: "nordnet.csv", StartVoucher: 1}
}

var config = DefaultConfig()

// LoadConfig reads the flag defaults from the environment, after loading a
// .env file from the working directory if there is one. Variables already set
// in the environment are not overridden by the .env file.
func LoadConfig() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: cannot load .env file: %v", err)
	}

	c := DefaultConfig()
	if v, ok := os.LookupEnv(EnvInput); ok && v != "" {
		c.Input = v
	}
	if v, ok := os.LookupEnv(EnvStartVoucher); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid %s %q: want a positive integer", EnvStartVoucher, v)
		}
		c.StartVoucher = n
	}
	if v, ok := os.LookupEnv(EnvVerbose); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvVerbose, v, err)
		}
		c.Verbose = b
	}
	config = c
	return nil
}
