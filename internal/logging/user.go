package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// User-facing output functions with status indicators.
// These write to stdout/stderr directly for CLI output,
// separate from the structured debug logging.

var (
	infoMark    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).SetString("ℹ")
	successMark = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).SetString("✓")
	warningMark = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).SetString("⚠")
	errorMark   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).SetString("✗")
)

// UserOut and UserErr are the destinations for user-facing output.
// Tests swap them to capture output.
var (
	UserOut io.Writer = os.Stdout
	UserErr io.Writer = os.Stderr
)

// UserInfo prints an info message to stdout.
func UserInfo(format string, args ...interface{}) {
	fmt.Fprintf(UserOut, "%s "+format+"\n", append([]interface{}{infoMark}, args...)...)
}

// UserSuccess prints a success message to stdout.
func UserSuccess(format string, args ...interface{}) {
	fmt.Fprintf(UserOut, "%s "+format+"\n", append([]interface{}{successMark}, args...)...)
}

// UserWarning prints a warning message to stderr.
func UserWarning(format string, args ...interface{}) {
	fmt.Fprintf(UserErr, "%s "+format+"\n", append([]interface{}{warningMark}, args...)...)
}

// UserError prints an error message to stderr.
func UserError(format string, args ...interface{}) {
	fmt.Fprintf(UserErr, "%s "+format+"\n", append([]interface{}{errorMark}, args...)...)
}
