// Package color provides the terminal styles simctl uses for its own
// messages. Forwarded orchestrator output is never restyled.
//
// lipgloss handles capability detection (TrueColor, 256, 16, none) and
// honors NO_COLOR, so the styles below degrade to plain text automatically.
package color

import "github.com/charmbracelet/lipgloss"

var (
	// Success marks positive outcomes (service started, fix-up applied).
	Success = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "42"})

	// Warning marks degraded but non-fatal states (skipped preflight).
	Warning = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "130", Dark: "214"})

	// Error marks failures reported by simctl itself.
	Error = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "196"}).Bold(true)

	// Muted de-emphasizes auxiliary text such as remediation hints.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "245"})
)
