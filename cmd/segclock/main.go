// Segclock — a seven-segment countdown timer in your terminal.
//
// Usage:
//
//	segclock [-seconds 60] [-theme 0] [-volume 80]
package main

import (
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"segclock/internal/alarm"
	"segclock/internal/domain"
	"segclock/internal/logger"
	"segclock/internal/theme"
	"segclock/internal/widget"
)

func main() {
	_ = godotenv.Load()

	seconds := flag.Int("seconds", envInt("SEGCLOCK_SECONDS", 60), "number of seconds to count down from")
	themeIdx := flag.Int("theme", envInt("SEGCLOCK_THEME", 0), "theme index: 0 standard, 1 ocean, 2 playful, 3 regal, 4 striking")
	volume := flag.Int("volume", envInt("SEGCLOCK_VOLUME", 80), "alarm volume, 0-100")
	themesFile := flag.String("themes-file", os.Getenv("SEGCLOCK_THEMES_FILE"), "optional YAML file with theme color overrides")
	silent := flag.Bool("silent", false, "disable alarm audio")
	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".segclock.log", "file to write logs to (use \"stderr\" to log to console)")
	flag.Parse()

	logLevel := logger.ParseLevel(os.Getenv("SEGCLOCK_LOG"))
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the TUI stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "stderr" && logLevel != logger.LevelOff {
		if err := os.MkdirAll(filepath.Dir(filepath.Clean(*logFile)), 0o755); err == nil {
			if f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
				defer f.Close()
				logOut = f
			}
		}
	}
	log := logger.New(logLevel, logOut)

	themes := theme.Builtins()
	if *themesFile != "" {
		loaded, err := theme.LoadOverrides(*themesFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "themes: %v\n", err)
			os.Exit(1)
		}
		themes = loaded
		log.Info("theme overrides loaded from %s", *themesFile)
	}

	var device domain.AlarmDevice
	if *silent {
		device = alarm.NewMuted(log)
	} else {
		dev, err := alarm.NewDevice(log)
		if err != nil {
			log.Warn("audio unavailable, running silent: %v", err)
			device = alarm.NewMuted(log)
		} else {
			device = dev
		}
	}

	w, err := widget.NewTimer(*seconds, *themeIdx, *volume,
		widget.WithLogger(log),
		widget.WithThemes(themes),
		widget.WithAlarmDevice(device),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "segclock: %v\n", err)
		os.Exit(1)
	}

	program := tea.NewProgram(newModel(w, log), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		stdlog.Fatalf("segclock: %v", err)
	}
}

// envInt reads an integer environment variable, falling back to def
// when unset or malformed.
func envInt(name string, def int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
