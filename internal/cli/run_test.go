package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/kriskowal/yay/internal/cli"
)

func newConfig() *cli.Config {
	return &cli.Config{To: "yay", LogLevel: "error", LogFormat: "text"}
}

func TestRunRewritesMEHFileInPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yay")
	qt.Assert(t, qt.IsNil(os.WriteFile(path, []byte("a:   1\nb:2\n"), 0o644)))

	cfg := newConfig()
	cfg.Write = true
	err := cli.Run(cfg, []string{path})
	qt.Assert(t, qt.IsNil(err))

	data, err := os.ReadFile(path)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(string(data), "a: 1\nb: 2\n"))
}

func TestRunCheckModeReportsOK(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yay")
	qt.Assert(t, qt.IsNil(os.WriteFile(path, []byte("a: 1\n"), 0o644)))

	cfg := newConfig()
	cfg.Check = true
	err := cli.Run(cfg, []string{path})
	qt.Assert(t, qt.IsNil(err))
}

func TestRunCheckModeReportsFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yay")
	qt.Assert(t, qt.IsNil(os.WriteFile(path, []byte("a: 1 \n"), 0o644)))

	cfg := newConfig()
	cfg.Check = true
	err := cli.Run(cfg, []string{path})
	qt.Assert(t, qt.Not(qt.IsNil(err)))
}

func TestRunDirectoryWalksYAYFilesOnly(t *testing.T) {
	dir := t.TempDir()
	qt.Assert(t, qt.IsNil(os.WriteFile(filepath.Join(dir, "a.yay"), []byte("x: 1\n"), 0o644)))
	qt.Assert(t, qt.IsNil(os.WriteFile(filepath.Join(dir, "ignore.txt"), []byte("not yay"), 0o644)))

	cfg := newConfig()
	cfg.Check = true
	err := cli.Run(cfg, []string{dir})
	qt.Assert(t, qt.IsNil(err))
}

func TestRunSHONTrigger(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.yay")
	cfg := newConfig()
	cfg.Output = out
	err := cli.Run(cfg, []string{"[", "--name", "alice", "]"})
	qt.Assert(t, qt.IsNil(err))
	data, err := os.ReadFile(out)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(strings.Contains(string(data), `name: "alice"`), true))
}

func TestExitCodeFor(t *testing.T) {
	qt.Assert(t, qt.Equals(cli.ExitCodeFor(nil), 0))
}
