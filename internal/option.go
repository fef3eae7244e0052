package internal

import "time"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config       *Config
	files        []string
	now          func() time.Time
	historyLimit int
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithFiles sets the input files for one wizard session, in argv order.
func WithFiles(files []string) Option {
	return func(a *application) {
		a.files = files
	}
}

// WithClock sets the clock used for the default rename date.
// Defaults to time.Now; tests inject a fixed clock.
func WithClock(now func() time.Time) Option {
	return func(a *application) {
		a.now = now
	}
}

// WithHistory makes the run print the last n journal records instead of
// starting the wizard.
func WithHistory(n int) Option {
	return func(a *application) {
		a.historyLimit = n
	}
}
