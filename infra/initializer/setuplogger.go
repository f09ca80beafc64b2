package initializer

import (
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/bankcore/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

func setupLogger(cfg *config.Log) *slog.Logger {
	return newLogger(os.Stdout, cfg)
}

// newLogger fronts slog with a charm handler writing to w and installs it
// as the slog default.
func newLogger(w io.Writer, cfg *config.Log) *slog.Logger {
	if cfg == nil {
		cfg = &config.Log{Format: "text"}
	}
	styles := log.DefaultStyles()
	infoTxtColor := lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnTxtColor := lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errorTxtColor := lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugTxtColor := lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}

	levels := []struct {
		level log.Level
		icon  string
		color lipgloss.AdaptiveColor
	}{
		{log.ErrorLevel, "❌", errorTxtColor},
		{log.InfoLevel, "ℹ️", infoTxtColor},
		{log.WarnLevel, "⚠️", warnTxtColor},
		{log.DebugLevel, "🐛", debugTxtColor},
	}
	for _, l := range levels {
		styles.Levels[l.level] = lipgloss.NewStyle().
			SetString(l.icon).
			Bold(true).
			Padding(0, 1).
			Foreground(l.color)
	}

	keyColors := map[string]lipgloss.AdaptiveColor{
		"error":     errorTxtColor,
		"info":      infoTxtColor,
		"warn":      warnTxtColor,
		"debug":     debugTxtColor,
		"prefix":    debugTxtColor,
		"caller":    debugTxtColor,
		"time":      debugTxtColor,
		"accountID": infoTxtColor,
		"bankID":    infoTxtColor,
	}
	for key, color := range keyColors {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(color)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}

	formattersMap := map[string]log.Formatter{
		"json": log.JSONFormatter,
		"text": log.TextFormatter,
	}
	formatter := log.TextFormatter
	if f, ok := formattersMap[cfg.Format]; ok {
		formatter = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})

	logger.SetStyles(styles)

	slogger := slog.New(logger)
	slog.SetDefault(slogger)

	return slogger
}
