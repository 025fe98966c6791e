package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/casegen/pkg/batch"
)

// statusOut receives every status line. Generated records are written to
// stdout, so `casegen generate c.json > cases.json` captures data only.
var statusOut io.Writer = os.Stderr

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - headings, field names
	colorGreen  = lipgloss.Color("35")  // Green - success, cache hits
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - suggested commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - labels
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for headings such as the browse header.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for file and field names inside messages.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for values and paths.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warnings.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached    = lipgloss.NewStyle().Foreground(colorGreen)
	styleGenerated = lipgloss.NewStyle().Foreground(colorGray)
	styleLabel     = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleKind      = lipgloss.NewStyle().Foreground(colorGray).Width(4)
	styleCommand   = lipgloss.NewStyle().Foreground(colorBlue)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	sep         = " · "
)

// =============================================================================
// Status Lines
// =============================================================================

func printStatus(icon string, style lipgloss.Style, msg string) {
	fmt.Fprintln(statusOut, style.Render(icon)+" "+msg)
}

func printSuccess(format string, args ...any) {
	printStatus(iconSuccess, styleIconSuccess, fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	printStatus(iconError, styleIconError, fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	printStatus(iconWarning, styleIconWarning, StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	printStatus(iconInfo, styleIconInfo, fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line under the previous status.
func printDetail(format string, args ...any) {
	fmt.Fprintln(statusOut, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printKeyValue prints an aligned label and value, as used by serve.
func printKeyValue(key, value string) {
	fmt.Fprintln(statusOut, styleLabel.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Output Files
// =============================================================================

// printWritten lists a file the command produced, tagged with its kind
// (json, yaml, dot, svg).
func printWritten(path string) {
	kind := strings.TrimPrefix(filepath.Ext(path), ".")
	fmt.Fprintln(statusOut, "  "+StyleDim.Render(iconArrow)+" "+styleKind.Render(kind)+" "+StyleValue.Render(path))
}

// =============================================================================
// Batch Summary
// =============================================================================

// batchSummary describes a finished batch on one line, for example
// "20 records · 4 fields · seed 42 · cached · 3ms".
func batchSummary(res *batch.Result, fields int) string {
	parts := []string{
		StyleDim.Render(plural(len(res.Records), "record")),
		StyleDim.Render(plural(fields, "field")),
	}
	if res.Seed != nil {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("seed %d", *res.Seed)))
	}
	if res.CacheHit {
		parts = append(parts, styleCached.Render("cached"))
	} else {
		parts = append(parts, styleGenerated.Render("generated"))
	}
	parts = append(parts, StyleDim.Render(res.Duration.Round(time.Millisecond).String()))
	return strings.Join(parts, StyleDim.Render(sep))
}

func printBatchSummary(res *batch.Result, fields int) {
	fmt.Fprintln(statusOut, "  "+batchSummary(res, fields))
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Fprintln(statusOut, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}
