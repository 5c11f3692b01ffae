package domain

import "errors"

// ErrInvalidTheme is returned when a theme is not one of the defined
// variants.
var ErrInvalidTheme = errors.New("invalid theme")

// Theme selects the visual treatment of a presentation.
type Theme string

// The three supported themes.
const (
	ThemeExecutive Theme = "executive"
	ThemeMinimal   Theme = "minimal"
	ThemeTech      Theme = "tech"
)

// IsValidTheme reports whether theme is one of the defined variants.
func IsValidTheme(theme Theme) bool {
	switch theme {
	case ThemeExecutive, ThemeMinimal, ThemeTech:
		return true
	default:
		return false
	}
}
