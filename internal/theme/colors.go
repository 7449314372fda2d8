package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Mode badge colors
const (
	ColorDarkMode  Color = "63"  // Indigo
	ColorLightMode Color = "221" // Warm yellow
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorFocused   Color = "212" // Pink - focused field border
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSelected  Color = "237" // Selected row background
	ColorSubtle    Color = "245" // Light gray - labels
	ColorSuccess   Color = "42"  // Green - confirmations
	ColorVersion   Color = "240" // Dark gray
	ColorWarning   Color = "214" // Orange - notices
)

// Action menu colors
const (
	ColorDimmed          Color = "240" // Dimmed background behind overlays
	ColorMenuBorder      Color = "62"  // Slate blue
	ColorScrollIndicator Color = "243"
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorHintKey   Color = "226" // Yellow
	ColorHintLabel Color = "178" // Gold
	ColorSpinner   Color = "205" // Pink
)
