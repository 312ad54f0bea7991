package contract

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Speedup label constants.
const (
	FasterValue = "Faster" // Baseline is slower than the comparison
	EvenValue   = "Even"   // Within the noise band
	SlowerValue = "Slower" // Baseline is faster than the comparison
)

// evenBand is the relative distance from 1.0 that still counts as even.
const evenBand = 0.02

// Color variables for console output.
var (
	FasterColor = color.New(color.FgGreen, color.Bold) // FasterColor marks a speedup above one.
	EvenColor   = color.New(color.FgYellow)            // EvenColor marks a ratio within the noise band.
	SlowerColor = color.New(color.FgRed, color.Bold)   // SlowerColor marks a regression.
)

// GetPlainSpeedupLabel returns a plain text label for a baseline/comparison ratio.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainSpeedupLabel(ratio float64) string {
	switch {
	case ratio > 1+evenBand:
		return FasterValue
	case ratio < 1-evenBand:
		return SlowerValue
	default:
		return EvenValue
	}
}

// GetColorSpeedupLabel returns a colored speedup label for console output (table).
func GetColorSpeedupLabel(ratio float64) string {
	text := GetPlainSpeedupLabel(ratio)

	switch text {
	case FasterValue:
		return FasterColor.Sprint(text)
	case SlowerValue:
		return SlowerColor.Sprint(text)
	default:
		return EvenColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "❌ %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "⚠️  %s: %v\n", msg, err)
}

// NewLogger returns a text slog logger on w. Verbose enables debug records.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// TruncateTitle truncates a benchmark title to a maximum width with an ellipsis prefix.
// Requires maxWidth > 3 to ensure there's space for both the "..." prefix and at least one character of content.
func TruncateTitle(title string, maxWidth int) string {
	runes := []rune(title)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return title
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
