package palette

import (
	"context"
	"fmt"
)

const (
	// DefaultMinDiff is the default lower bound of the distance band.
	DefaultMinDiff = 0.2
	// DefaultMaxDiff exceeds MaxDistance, so by default there is no upper bound.
	DefaultMaxDiff = 2.0
	// DefaultMaxAttempts caps consecutive rejections before giving up.
	DefaultMaxAttempts = 1_000_000
)

// ctxCheckInterval is how many draws pass between context checks.
const ctxCheckInterval = 1024

// Observer receives generator events. It is purely observational.
type Observer interface {
	// Accepted is called after c was appended; size is the new palette length.
	Accepted(c Color, size int)
	// Rejected is called when c failed against an already accepted color.
	Rejected(c Color, against Color, distance float64)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnAccept func(c Color, size int)
	OnReject func(c Color, against Color, distance float64)
}

func (o ObserverFuncs) Accepted(c Color, size int) {
	if o.OnAccept != nil {
		o.OnAccept(c, size)
	}
}

func (o ObserverFuncs) Rejected(c Color, against Color, distance float64) {
	if o.OnReject != nil {
		o.OnReject(c, against, distance)
	}
}

// Options holds the generator parameters. Use the With* functions to set them.
type Options struct {
	MinDiff     float64
	MaxDiff     float64
	Seeds       []Color
	Sampler     Sampler
	Observer    Observer
	MaxAttempts int
}

// Option configures a Generate call.
type Option func(*Options)

func WithMinDiff(d float64) Option { return func(o *Options) { o.MinDiff = d } }

func WithMaxDiff(d float64) Option { return func(o *Options) { o.MaxDiff = d } }

// WithSeeds starts the palette from colors. The slice is copied.
func WithSeeds(colors ...Color) Option {
	return func(o *Options) { o.Seeds = colors }
}

func WithSampler(s Sampler) Option { return func(o *Options) { o.Sampler = s } }

func WithObserver(obs Observer) Option { return func(o *Options) { o.Observer = obs } }

// WithMaxAttempts sets how many consecutive rejections are tolerated before
// ErrInfeasible. Zero keeps DefaultMaxAttempts; a negative value removes the cap.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n == 0 {
			n = DefaultMaxAttempts
		}
		o.MaxAttempts = n
	}
}

func defaultOptions() Options {
	return Options{
		MinDiff:     DefaultMinDiff,
		MaxDiff:     DefaultMaxDiff,
		Sampler:     Uniform(nil),
		MaxAttempts: DefaultMaxAttempts,
	}
}

func (o Options) validate(n int) error {
	if n < 0 {
		return InvalidArgument("n", fmt.Sprintf("must not be negative, got %d", n))
	}
	if !(o.MinDiff > 0 && o.MinDiff <= MaxDistance) {
		return InvalidArgument("min diff", fmt.Sprintf("must be in (0, %.4f], got %v", MaxDistance, o.MinDiff))
	}
	if o.MaxDiff < o.MinDiff {
		return InvalidArgument("max diff", fmt.Sprintf("%v is below min diff %v", o.MaxDiff, o.MinDiff))
	}
	if o.Sampler == nil {
		return InvalidArgument("sampler", "must not be nil")
	}
	return nil
}

// IsDistinguishable reports whether candidate lies within [minDiff, maxDiff]
// of every color in existing.
func IsDistinguishable(candidate Color, existing []Color, minDiff, maxDiff float64) bool {
	_, _, ok := firstConflict(candidate, existing, minDiff, maxDiff)
	return ok
}

// firstConflict walks existing in order and stops at the first color whose
// distance to candidate falls outside the band.
func firstConflict(candidate Color, existing []Color, minDiff, maxDiff float64) (Color, float64, bool) {
	for _, ec := range existing {
		d := Distance(candidate, ec)
		if d < minDiff || d > maxDiff {
			return ec, d, false
		}
	}
	return Color{}, 0, true
}

// Generate returns a palette of n pairwise distinguishable colors.
func Generate(n int, opts ...Option) (Palette, error) {
	return GenerateContext(context.Background(), n, opts...)
}

// GenerateContext is Generate with cancellation. Candidates are drawn from the
// sampler and appended only when they sit inside the distance band of every
// color accepted so far. Seed colors are taken as-is; when there are at least
// n of them they are returned without sampling.
func GenerateContext(ctx context.Context, n int, opts ...Option) (Palette, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(n); err != nil {
		return nil, err
	}

	colors := make(Palette, len(o.Seeds), max(n, len(o.Seeds)))
	copy(colors, o.Seeds)

	rejected := 0
	for draws := 0; len(colors) < n; draws++ {
		if draws%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("%w after %d of %d colors: %w", ErrTimeout, len(colors), n, err)
			}
		}

		candidate := o.Sampler()
		against, d, ok := firstConflict(candidate, colors, o.MinDiff, o.MaxDiff)
		if !ok {
			if o.Observer != nil {
				o.Observer.Rejected(candidate, against, d)
			}
			rejected++
			if o.MaxAttempts >= 0 && rejected >= o.MaxAttempts {
				return nil, &InfeasibleError{Size: len(colors), Target: n, Attempts: rejected}
			}
			continue
		}

		colors = append(colors, candidate)
		rejected = 0
		if o.Observer != nil {
			o.Observer.Accepted(candidate, len(colors))
		}
	}
	return colors, nil
}
