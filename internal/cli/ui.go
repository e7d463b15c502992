package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleLink for URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
)

// printer writes styled status lines. Commands print to cmd.OutOrStdout()
// so tests can capture output.
type printer struct {
	w io.Writer
}

func (p printer) success(format string, args ...any) {
	fmt.Fprintln(p.w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func (p printer) error(format string, args ...any) {
	fmt.Fprintln(p.w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func (p printer) info(format string, args ...any) {
	fmt.Fprintln(p.w, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

func (p printer) title(text string) {
	fmt.Fprintln(p.w, StyleTitle.Render(text))
}

// detail prints an indented, dimmed line.
func (p printer) detail(format string, args ...any) {
	fmt.Fprintln(p.w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// file prints an output path.
func (p printer) file(path string) {
	fmt.Fprintln(p.w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

func (p printer) keyValue(key, value string) {
	fmt.Fprintln(p.w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

type count struct {
	n    int
	unit string
}

// stats prints counts on a single line, skipping zeros.
func (p printer) stats(counts ...count) {
	var parts []string
	for _, c := range counts {
		if c.n > 0 {
			parts = append(parts, StyleNumber.Render(fmt.Sprint(c.n))+StyleDim.Render(" "+c.unit))
		}
	}
	if len(parts) == 0 {
		return
	}
	fmt.Fprintln(p.w, "  "+strings.Join(parts, StyleDim.Render(" · ")))
}
