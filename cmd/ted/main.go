package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ted-editor/ted/config"
	"github.com/ted-editor/ted/editor"
	"github.com/ted-editor/ted/render"
	"github.com/ted-editor/ted/terminal"
)

var configFlag = flag.String("config", "", "Config file path (default ~/.config/ted/config.toml)")

func main() {
	// Panic recovery: restore the terminal to a sane state even if the
	// editor crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTED CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "ted: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	cfgPath := *configFlag
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	closeLog := setupLogging(cfg.Log)
	defer closeLog()

	// Capability check runs before any terminal mode change: a failure
	// here is fatal with nothing to restore
	if err := terminal.Check(); err != nil {
		return err
	}

	var content []byte
	if path != "" {
		content, err = os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return fmt.Errorf("read %s: %w", path, err)
			}
			// Editing a file that doesn't exist yet starts empty
			content = nil
		}
		log.Debug().Str("file", path).Int("bytes", len(content)).Msg("loaded")
	}

	sess := terminal.NewSession()
	if err := sess.Begin(); err != nil {
		return err
	}
	// The session is restored on every exit path out of run; the panic
	// guard in main covers the rest
	defer sess.End()

	ed := editor.New(sess, content, styleFromTheme(cfg.Theme))
	if err := ed.Run(); err != nil {
		return err
	}

	if path != "" {
		if err := os.WriteFile(path, ed.Bytes(), 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		log.Debug().Str("file", path).Msg("saved")
	}
	return nil
}

func styleFromTheme(t config.Theme) render.Style {
	return render.Style{
		BlockComment:  t.BlockComment,
		LineComment:   t.LineComment,
		StringLiteral: t.StringLiteral,
		Identifier:    t.Identifier,
		Number:        t.Number,
		Punctuation:   t.Punctuation,
	}
}

// setupLogging points the global logger at a file; stdout belongs to the
// renderer while the session is active. Any failure degrades to a no-op
// logger rather than corrupting the screen.
func setupLogging(cfg config.Log) func() {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.WarnLevel
	}

	path := cfg.Path
	if path == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			log.Logger = zerolog.Nop()
			return func() {}
		}
		path = filepath.Join(dir, "ted", "ted.log")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Logger = zerolog.Nop()
		return func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log.Logger = zerolog.Nop()
		return func() {}
	}

	log.Logger = zerolog.New(f).Level(level).With().Timestamp().Logger()
	return func() { f.Close() }
}
