package spectral

import "github.com/cwbudde/algo-highlight/dsp/fft2d"

// Config defines engine settings for a filtering pass.
type Config struct {
	Workers      int
	Backend      fft2d.Backend
	KeepSpectrum bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a serial pass on the automatic FFT backend.
func DefaultConfig() Config {
	return Config{
		Workers: 1,
		Backend: fft2d.BackendAuto,
	}
}

// WithWorkers sets how many goroutines evaluate the transfer function.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// WithBackend selects the FFT backend.
func WithBackend(b fft2d.Backend) Option {
	return func(cfg *Config) {
		cfg.Backend = b
	}
}

// WithKeepSpectrum retains the filtered, centered spectrum in the Result.
func WithKeepSpectrum() Option {
	return func(cfg *Config) {
		cfg.KeepSpectrum = true
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
