package views

// ViewLoaded is a custom vaxis event posted when a page finishes loading data.
// It is sent from background goroutines via PostEvent to notify the UI.
type ViewLoaded struct {
	Path string
	Err  error
}

// PreferencesChanged is posted when the theme or locale changes so the whole
// screen is redrawn.
type PreferencesChanged struct{}
