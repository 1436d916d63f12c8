package slew

// Option configures a Limiter at construction time.
type Option func(*Limiter)

// WithSmoothing sets the EMA smoothing code.
func WithSmoothing(s Smoothing) Option {
	return func(l *Limiter) {
		l.smoothing = s
	}
}

// WithRateLimit sets the base per-sample rate limit.
func WithRateLimit(limit int) Option {
	return func(l *Limiter) {
		l.rateLimit = limit
	}
}

// WithHysteresisBand sets the deadband radius.
func WithHysteresisBand(band int) Option {
	return func(l *Limiter) {
		l.hysteresisBand = band
	}
}

// WithAdaptiveSlope sets the adaptive slope percentage. The percentage is
// converted to the internal base-128 gain with the same rounding rule as
// [Limiter.SetAdaptiveSlope].
func WithAdaptiveSlope(slopePercent int) Option {
	return func(l *Limiter) {
		l.SetAdaptiveSlope(slopePercent)
	}
}
