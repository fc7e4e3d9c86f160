package domain

// Theme is the persisted UI theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Settings holds the only state that survives a restart: presentation
// preferences. Core chat logic never reads these.
type Settings struct {
	Theme              Theme
	OnboardingComplete bool
}

// DefaultSettings is used when the store has no saved values yet.
func DefaultSettings() Settings {
	return Settings{Theme: ThemeLight, OnboardingComplete: false}
}
