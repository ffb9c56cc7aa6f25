package packapp

import (
	"errors"

	"refinspect/internal/joined"
)

// Config is filled from flags and environment by goconfig (see cmd/refpack).
type Config struct {
	Input   string `usage:"FASTA input, plain or gzip ('-' for stdin)"`
	Output  string `usage:"index base path (.rjx is appended)"`
	Align   int    `usage:"pad each reference start to a multiple of N joined positions"`
	Verbose bool   `usage:"debug logging on stderr"`
	Quiet   bool   `usage:"log errors only"`
	Version bool   `usage:"show version and exit"`
}

// DefaultConfig returns the defaults goconfig overrides.
func DefaultConfig() Config {
	return Config{
		Input: "-",
		Align: joined.DefaultAlign,
	}
}

// Validate checks a config before any input is read.
func (c Config) Validate() error {
	switch {
	case c.Input == "":
		return errors.New("-input is required")
	case c.Output == "":
		return errors.New("-output is required")
	case c.Align < 1:
		return errors.New("-align must be at least 1")
	}
	return nil
}
