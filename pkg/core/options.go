package core

// DefaultDensity is the probability of a cell starting alive.
const DefaultDensity = 0.5

// DefaultSeed seeds the initial grid when no seed is given.
const DefaultSeed int64 = 42

// Options holds the optional settings shared by the automaton constructors.
type Options struct {
	Observer Observer
	Seed     int64
	Density  float64
}

// Option configures an automaton during construction.
type Option func(*Options)

// BuildOptions applies opts over the defaults.
func BuildOptions(opts ...Option) Options {
	o := Options{Observer: NopObserver, Seed: DefaultSeed, Density: DefaultDensity}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Observer == nil {
		o.Observer = NopObserver
	}
	if o.Density < 0 || o.Density > 1 {
		o.Density = DefaultDensity
	}
	return o
}

// WithObserver injects the observer that receives grid events.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// WithSeed sets the seed used for the initial grid and for random hues.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithDensity sets the probability, in [0, 1], of a cell starting alive.
func WithDensity(p float64) Option {
	return func(o *Options) { o.Density = p }
}
