package internal

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config     *Config
	configPath string
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithConfigPath sets the path the configuration was loaded from.
// When set, the server watches the file and hot-reloads the log level
// on change.
func WithConfigPath(path string) Option {
	return func(a *application) {
		a.configPath = path
	}
}
