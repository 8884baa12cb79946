package initializer

import (
	"io"
	"log/slog"

	"github.com/amirasaad/fxconvert/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	infoTxtColor  = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnTxtColor  = lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errorTxtColor = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugTxtColor = lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}
)

// NewLogger builds a styled logger writing to w. A nil cfg uses text output
// at info level.
func NewLogger(w io.Writer, cfg *config.Log) *slog.Logger {
	if cfg == nil {
		cfg = &config.Log{Format: "text", TimeFormat: "2006-01-02 15:04:05"}
	}

	formatters := map[string]log.Formatter{
		"json":   log.JSONFormatter,
		"text":   log.TextFormatter,
		"logfmt": log.LogfmtFormatter,
	}
	formatter := log.TextFormatter
	if f, ok := formatters[cfg.Format]; ok {
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
	logger.SetStyles(levelStyles())

	return slog.New(logger)
}

func levelStyles() *log.Styles {
	styles := log.DefaultStyles()

	level := func(symbol string, color lipgloss.AdaptiveColor) lipgloss.Style {
		return lipgloss.NewStyle().
			SetString(symbol).
			Bold(true).
			Padding(0, 1).
			Foreground(color)
	}
	styles.Levels[log.ErrorLevel] = level("ERR", errorTxtColor)
	styles.Levels[log.InfoLevel] = level("INF", infoTxtColor)
	styles.Levels[log.WarnLevel] = level("WRN", warnTxtColor)
	styles.Levels[log.DebugLevel] = level("DBG", debugTxtColor)

	keyColors := map[string]lipgloss.AdaptiveColor{
		"error":  errorTxtColor,
		"status": warnTxtColor,
		"base":   infoTxtColor,
		"target": infoTxtColor,
		"rate":   infoTxtColor,
		"prefix": debugTxtColor,
		"caller": debugTxtColor,
		"time":   debugTxtColor,
	}
	for k, c := range keyColors {
		styles.Keys[k] = lipgloss.NewStyle().Foreground(c)
		styles.Values[k] = lipgloss.NewStyle().Bold(true)
	}
	return styles
}
