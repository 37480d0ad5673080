package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	yay "github.com/kriskowal/yay"
	"github.com/kriskowal/yay/internal/value"
	"github.com/kriskowal/yay/internal/yaycbor"
	"github.com/kriskowal/yay/internal/yaycst"
	"github.com/kriskowal/yay/internal/yayenc"
	"github.com/kriskowal/yay/internal/yayerr"
	"github.com/kriskowal/yay/internal/yaylog"
	"github.com/kriskowal/yay/internal/yayshon"
)

// shonTriggers are the dashed atoms that put the CLI into SHON mode,
// per spec.md §6.
var shonTriggers = map[string]bool{
	"-": true, "[": true, "[]": true, "[--]": true, "-x": true, "-b": true, "-s": true,
}

// checkFailure marks a --check validation error, for which runOne has
// already printed its own "<path>: <message>" line. main.go does not
// tell it apart from other errors: it prints it again with its "yay: "
// prefix and exits 1.
type checkFailure struct{ err error }

func (c checkFailure) Error() string { return c.err.Error() }
func (c checkFailure) Unwrap() error { return c.err }

// ExitCodeFor maps a Run error to a process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// Run executes the CLI with the given config and positional args.
func Run(cfg *Config, args []string) error {
	logger := newLogger(cfg)

	if len(args) > 0 && isSHONTrigger(args[0]) {
		return runSHON(cfg, args)
	}

	wrap := resolveWrap()

	if len(args) == 0 {
		return runOne(cfg, logger, wrap, "-")
	}

	target := args[0]
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat %q: %w", target, err)
	}
	if !info.IsDir() {
		return runOne(cfg, logger, wrap, target)
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		return fmt.Errorf("read dir %q: %w", target, err)
	}
	var firstErr error
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yay") {
			continue
		}
		path := filepath.Join(target, e.Name())
		if err := runOne(cfg, logger, wrap, path); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func newLogger(cfg *Config) *slog.Logger {
	h, err := yaylog.NewHandlerFromStrings(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		h = yaylog.NewHandler(os.Stderr, slog.LevelInfo, yaylog.FormatText)
	}
	return slog.New(h)
}

func isSHONTrigger(s string) bool {
	if shonTriggers[s] {
		return true
	}
	return false
}

func runSHON(cfg *Config, args []string) error {
	v, _, err := yayshon.ParseBracket(shonArgs(args))
	if err != nil {
		return err
	}
	return emit(cfg, v, "-")
}

// shonArgs normalizes a bare "-" (the other triggers are tokens
// ParseBracket accepts as they are) into "[" so ParseBracket always
// sees a well-formed opening token.
func shonArgs(args []string) []string {
	if args[0] == "-" {
		out := append([]string{"["}, args[1:]...)
		return out
	}
	return args
}

func runOne(cfg *Config, logger *slog.Logger, wrap int, path string) error {
	source, err := readInput(path)
	if err != nil {
		return err
	}

	from := cfg.From
	if from == "" {
		if cfg.Check {
			from = "yay"
		} else {
			from = "meh"
		}
	}

	logger.Debug("parsing", "path", path, "format", from)

	if cfg.Check {
		_, err := decodeStrict(source, path, from)
		if err != nil {
			fmt.Printf("%s: %v\n", path, err)
			return checkFailure{err}
		}
		fmt.Printf("%s: ok\n", path)
		return nil
	}

	if from == "meh" {
		text, err := yaycst.Reformat(source, wrap)
		if err != nil {
			return err
		}
		if cfg.To == "" || cfg.To == "yay" {
			return writeOutput(cfg, path, "yay", text)
		}
		v, err := yay.ParseWithFilename(text, path)
		if err != nil {
			return err
		}
		return emitToPath(cfg, v, path)
	}

	v, err := decodeStrict(source, path, from)
	if err != nil {
		return err
	}
	return emitToPath(cfg, v, path)
}

func decodeStrict(source, path, from string) (value.Value, error) {
	switch from {
	case "yay", "":
		return yay.ParseWithFilename(source, path)
	case "yson":
		return yay.ParseYSON(source)
	default:
		return value.Value{}, yayerr.Newf(yayerr.KindGeneric, "unsupported input format %q", from)
	}
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %q: %w", path, err)
	}
	return string(data), nil
}

func emit(cfg *Config, v value.Value, path string) error {
	return emitToPath(cfg, v, path)
}

func emitToPath(cfg *Config, v value.Value, path string) error {
	to := cfg.To
	if to == "" {
		to = "yay"
	}

	if to == "cbor" {
		data, err := yaycbor.Encode(v)
		if err != nil {
			return err
		}
		return writeOutputBytes(cfg, path, "cbor", data)
	}
	if to == "cbor-diag" {
		data, err := yaycbor.Encode(v)
		if err != nil {
			return err
		}
		text, err := yaycbor.Diagnose(data)
		if err != nil {
			return err
		}
		return writeOutput(cfg, path, "txt", text+"\n")
	}

	format, ext, err := resolveFormat(to)
	if err != nil {
		return err
	}
	text, err := yayenc.Encode(v, format)
	if err != nil {
		return err
	}
	return writeOutput(cfg, path, ext, text)
}

func resolveFormat(to string) (yayenc.Format, string, error) {
	switch to {
	case "yay":
		return yayenc.FormatYAY, "yay", nil
	case "json":
		return yayenc.FormatJSON, "json", nil
	case "yson":
		return yayenc.FormatYSON, "yson", nil
	case "javascript", "js":
		return yayenc.FormatJavaScript, "js", nil
	case "go":
		return yayenc.FormatGo, "go", nil
	case "python", "py":
		return yayenc.FormatPython, "py", nil
	case "rust", "rs":
		return yayenc.FormatRust, "rs", nil
	case "c":
		return yayenc.FormatC, "c", nil
	case "java":
		return yayenc.FormatJava, "java", nil
	case "scheme":
		return yayenc.FormatScheme, "scm", nil
	default:
		return 0, "", yayerr.Newf(yayerr.KindGeneric, "unsupported output format %q", to)
	}
}

func writeOutput(cfg *Config, inputPath, ext, text string) error {
	return writeOutputBytes(cfg, inputPath, ext, []byte(text))
}

func writeOutputBytes(cfg *Config, inputPath, ext string, data []byte) error {
	switch {
	case cfg.Output != "":
		return os.WriteFile(cfg.Output, data, 0o644)
	case cfg.Write && inputPath != "-":
		out := strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + "." + ext
		return os.WriteFile(out, data, 0o644)
	default:
		_, err := os.Stdout.Write(data)
		return err
	}
}

func resolveWrap() int {
	if s := os.Getenv("YAY_WRAP"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return yaycst.DefaultWrap
}
