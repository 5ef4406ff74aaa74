package main

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorMantle   lipgloss.Color = "#181825"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorBrand   = colorMauve
	colorAccent  = colorMauve
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorAnswer  = colorTeal
)

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

var (
	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	timerStyle = lipgloss.NewStyle().Foreground(colorPeach)

	// Question rendering
	questionTitleStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	questionDescStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)
	questionDimStyle   = lipgloss.NewStyle().Foreground(colorOverlay1)
	answeredValStyle   = lipgloss.NewStyle().Foreground(colorAnswer)
	requiredMarkStyle  = lipgloss.NewStyle().Foreground(colorError)
	invalidStyle       = lipgloss.NewStyle().Foreground(colorError)
	helpTextStyle      = lipgloss.NewStyle().Foreground(colorSubtext0).Italic(true)

	// Choice options
	optionStyle         = lipgloss.NewStyle().Foreground(colorSubtext1)
	optionCursorStyle   = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	optionSelectedStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	// Progress bar
	progressDoneStyle  = lipgloss.NewStyle().Foreground(colorAccent)
	progressRestStyle  = lipgloss.NewStyle().Foreground(colorSurface1)
	progressLabelStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	// Footer bar
	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	// Submit / thank-you screens
	submitPromptStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	thankYouStyle     = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	statusStyle       = lipgloss.NewStyle().Foreground(colorSubtext0)
	statusErrStyle    = lipgloss.NewStyle().Foreground(colorError)
)
