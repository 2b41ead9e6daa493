package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: module names, logical paths,
	// scene object names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" artifact status (bright, high-visibility).
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "pending" artifact status (medium visibility).
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "missing" artifact status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (module names, logical paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (installing, wiring, building).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, separators, timestamps).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Artifact status constants.
const (
	StatusCreated   = "created"
	StatusExisting  = "existing"
	StatusPending   = "pending"
	StatusInstalled = "installed"
	StatusMissing   = "missing"
)

// StatusStyle returns the lipgloss style for a given artifact status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated, StatusInstalled:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusPending:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusExisting:
		return lipgloss.NewStyle().Faint(true)
	case StatusMissing:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minArtifactColumnWidth is the minimum width for the artifact path column
// before the status suffix. This ensures status words align consistently.
const minArtifactColumnWidth = 48

// FormatArtifactLine renders an artifact identifier with a right-aligned,
// color-coded status suffix.
//
// Format: a:<kind/logical-path>  <status>
//
// The "a:" prefix is dim, the path is cyan, and the status uses StatusStyle.
func FormatArtifactLine(kind, path, status string) string {
	full := kind + "/" + path

	padding := minArtifactColumnWidth - len(full)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render("a:")
	styledPath := StyleNoun.Render(full)
	styledStatus := StatusStyle(status).Render(status)

	pad := make([]byte, padding)
	for i := range pad {
		pad[i] = ' '
	}

	return prefix + styledPath + string(pad) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// IsTTY reports whether stdout is attached to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
