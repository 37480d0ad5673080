// Package cli implements the thin, I/O-owning shell around the YAY
// core: flag parsing, format inference, directory walking, and
// writing output next to its input. Per spec.md's scope note, this
// shell is deliberately outside the tested core; it exists only to
// invoke the core's pure operations and place their output.
//
// Grounded on MacroPower-x/log's Flags/Config/RegisterFlags pattern
// for the overall flag-registration shape.
package cli

import (
	"github.com/spf13/pflag"
)

// Version is the CLI's reported version string.
const Version = "0.1.0"

// Config holds every CLI flag value.
type Config struct {
	From   string
	To     string
	Write  bool
	Output string
	Check  bool

	LogLevel  string
	LogFormat string
}

// NewConfig returns a Config with its flags unregistered and defaults
// zeroed; call RegisterFlags before parsing argv.
func NewConfig() *Config {
	return &Config{}
}

// RegisterFlags adds the yay CLI's flags to flags.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.From, "from", "f", "", "input format (default: meh, or yay under --check)")
	flags.StringVarP(&c.To, "to", "t", "yay", "output format")
	flags.BoolVarP(&c.Write, "write", "w", false, "write output next to the input file")
	flags.StringVarP(&c.Output, "output", "o", "", "write output to this path, overriding --write's naming")
	flags.BoolVar(&c.Check, "check", false, "validate input only; print \"<path>: ok\" and exit nonzero on error")
	flags.StringVar(&c.LogLevel, "log-level", "info", "log level, one of: debug, info, warn, error")
	flags.StringVar(&c.LogFormat, "log-format", "text", "log format, one of: text, json")
}
