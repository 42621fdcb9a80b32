package shim

// Option configures a Device during creation.
//
// Example:
//
//	dev, err := d3d9.NewDevice(native,
//	    shim.WithObserver(myAddon),
//	    shim.WithConfig(cfg))
type Option func(*Options)

// Options holds the resolved device creation options.
// Backend packages obtain it through ApplyOptions.
type Options struct {
	Observers Observers
	Config    Config
}

// ApplyOptions resolves opts on top of the defaults.
func ApplyOptions(opts ...Option) Options {
	o := Options{Config: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithObserver registers an observer for lifecycle notifications.
// Observers are notified in registration order.
func WithObserver(ob Observer) Option {
	return func(o *Options) {
		if ob != nil {
			o.Observers = append(o.Observers, ob)
		}
	}
}

// WithConfig replaces the default configuration. Unset fields keep their
// default values.
func WithConfig(c Config) Option {
	return func(o *Options) {
		o.Config = c.WithDefaults()
	}
}
