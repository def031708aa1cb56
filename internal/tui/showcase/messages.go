package showcase

// ThemeToggledMsg reports the theme now in use.
type ThemeToggledMsg struct {
	Theme string
}

// toggleThemeMsg asks the model to switch between light and dark.
type toggleThemeMsg struct{}
