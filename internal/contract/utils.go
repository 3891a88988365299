package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/huangsam/posecoach/schema"
)

// Score band label constants.
const (
	MasteredValue   = "Mastered"
	VeryCloseValue  = "Very Close"
	GoodEffortValue = "Good Effort"
	OnTrackValue    = "On Track"
	PracticeValue   = "Practice"
)

// Color variables for console output.
var (
	SuccessColor = color.New(color.FgGreen, color.Bold)  // clean pose / high score
	InfoColor    = color.New(color.FgCyan)               // informational / low-priority signal
	WarningColor = color.New(color.FgYellow)             // standard caution, not bold
	ErrorColor   = color.New(color.FgRed, color.Bold)    // hard failures (model init)
	CloseColor   = color.New(color.FgMagenta, color.Bold) // almost-there score band
)

// GetPlainLabel returns a plain text label for a pose score. The bands
// mirror the feedback generator's thresholds so table labels and coaching
// messages never disagree.
func GetPlainLabel(score int) string {
	switch {
	case score >= 95:
		return MasteredValue
	case score >= 80:
		return VeryCloseValue
	case score >= 60:
		return GoodEffortValue
	case score >= 40:
		return OnTrackValue
	default:
		return PracticeValue
	}
}

// GetColorLabel returns a colored score label for console output (table).
// It uses GetPlainLabel to determine the string, then applies the color.
func GetColorLabel(score int) string {
	text := GetPlainLabel(score)
	switch text {
	case MasteredValue:
		return SuccessColor.Sprint(text)
	case VeryCloseValue:
		return CloseColor.Sprint(text)
	case GoodEffortValue:
		return InfoColor.Sprint(text)
	case OnTrackValue:
		return WarningColor.Sprint(text)
	default: // "Practice"
		return ErrorColor.Sprint(text)
	}
}

// GetSeverityLabel renders a feedback severity, optionally colored.
func GetSeverityLabel(severity schema.Severity, useColors bool) string {
	text := string(severity)
	if !useColors {
		return text
	}
	switch severity {
	case schema.SeveritySuccess:
		return SuccessColor.Sprint(text)
	case schema.SeverityWarning:
		return WarningColor.Sprint(text)
	case schema.SeverityError:
		return ErrorColor.Sprint(text)
	default: // info
		return InfoColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "❌ %s: %v\n", msg, err)
	os.Exit(1)
}

// Warning logs a warning.
func Warning(msg string) {
	fmt.Fprintf(os.Stderr, "⚠️  %s\n", msg)
}
