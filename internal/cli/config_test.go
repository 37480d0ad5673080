package cli_test

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/spf13/pflag"

	"github.com/kriskowal/yay/internal/cli"
)

func TestRegisterFlagsDefaults(t *testing.T) {
	cfg := cli.NewConfig()
	fs := pflag.NewFlagSet("yay", pflag.ContinueOnError)
	cfg.RegisterFlags(fs)
	qt.Assert(t, qt.IsNil(fs.Parse(nil)))
	qt.Assert(t, qt.Equals(cfg.To, "yay"))
	qt.Assert(t, qt.Equals(cfg.LogLevel, "info"))
	qt.Assert(t, qt.Equals(cfg.Write, false))
}

func TestRegisterFlagsOverride(t *testing.T) {
	cfg := cli.NewConfig()
	fs := pflag.NewFlagSet("yay", pflag.ContinueOnError)
	cfg.RegisterFlags(fs)
	qt.Assert(t, qt.IsNil(fs.Parse([]string{"--to", "json", "--check"})))
	qt.Assert(t, qt.Equals(cfg.To, "json"))
	qt.Assert(t, qt.Equals(cfg.Check, true))
}
