package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary Color = "99" // Purple - titles
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - values
	ColorMuted     Color = "241" // Gray - secondary text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorSuccess   Color = "2"   // Green - confirmations
)
