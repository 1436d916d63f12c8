package slew

const (
	// Default limiter parameters
	defaultSmoothing      = Smoothing16
	defaultRateLimit      = 5
	defaultHysteresisBand = 2
	defaultSlopePercent   = 0

	// Fixed-point scaling constants. The adaptive gain is expressed in
	// 128ths so widening reduces to a multiply and shift; the EMA carries
	// 10 extra bits of internal precision so that divisors up to 512
	// retain resolution without leaving native integer width.
	slopeScale = 128
	slopeShift = 7
	emaShift   = 10
)

// Limiter imposes a maximum per-sample rate of change on an integer signal.
//
// The limiter is unseeded after construction or [Limiter.Reset]: the first
// processed sample passes through unchanged and seeds both the rate-limited
// output and the EMA, avoiding an artificial transient on startup. Every
// subsequent sample is clamped so the output moves toward the input by at
// most the allowed change, where the allowed change is the base rate limit
// optionally widened in proportion to the pending delta (adaptive mode).
// Residual gaps no larger than the hysteresis band are snapped closed
// immediately.
//
// Configuration is taken literally: negative rate limits or bands and
// extreme slope percentages are accepted as given and simply produce
// correspondingly unusual behavior. Sane configuration is the caller's
// responsibility.
//
// The limiter processes one scalar stream and is not thread-safe. For
// multiple channels, instantiate one limiter per channel.
type Limiter struct {
	lastValue int
	emaValue  int
	firstCall bool

	smoothing      Smoothing
	rateLimit      int
	hysteresisBand int

	// Adaptive gain in 128ths, derived from a slope percentage.
	// Zero disables adaptive widening.
	adaptiveGain int
}

// New creates a limiter with the given options applied over the defaults:
// smoothing 1/16, rate limit 5, hysteresis band 2, adaptive slope 0
// (adaptive mode disabled).
func New(opts ...Option) *Limiter {
	l := &Limiter{
		firstCall:      true,
		smoothing:      defaultSmoothing,
		rateLimit:      defaultRateLimit,
		hysteresisBand: defaultHysteresisBand,
	}
	l.SetAdaptiveSlope(defaultSlopePercent)

	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}

	return l
}

// ProcessSample processes one raw sample and returns the rate-limited output.
//
// The first call after construction or [Limiter.Reset] seeds the limiter and
// returns the sample unchanged. Afterwards the output advances toward the
// input by at most the allowed change per call, except that gaps within the
// hysteresis band are closed in full.
func (l *Limiter) ProcessSample(value int) int {
	if l.firstCall {
		l.lastValue = value
		l.emaValue = value
		l.firstCall = false

		return value
	}

	l.emaValue = updateEMA(value, l.emaValue, l.smoothing)

	delta := value - l.lastValue

	allowed := l.rateLimit
	if l.adaptiveGain != 0 {
		allowed += (intAbs(delta) * l.adaptiveGain) >> slopeShift
	}

	switch {
	case delta > allowed:
		l.lastValue += allowed
	case delta < -allowed:
		l.lastValue -= allowed
	default:
		// The full delta fits inside the allowed envelope.
		l.lastValue = value
	}

	if intAbs(value-l.lastValue) <= l.hysteresisBand {
		// Residual gap is noise, not a rate-limiting opportunity.
		l.lastValue = value
	}

	return l.lastValue
}

// ProcessInPlace rate-limits buf in place.
func (l *Limiter) ProcessInPlace(buf []int) {
	for i := range buf {
		buf[i] = l.ProcessSample(buf[i])
	}
}

// SetRateLimit sets the base maximum change allowed per sample in fixed mode.
// Takes effect on the next ProcessSample call.
func (l *Limiter) SetRateLimit(limit int) {
	l.rateLimit = limit
}

// SetHysteresisBand sets the deadband radius within which residual gaps are
// snapped closed. Takes effect on the next ProcessSample call.
func (l *Limiter) SetHysteresisBand(band int) {
	l.hysteresisBand = band
}

// SetSmoothing sets the EMA smoothing code. Takes effect on the next
// ProcessSample call.
func (l *Limiter) SetSmoothing(s Smoothing) {
	l.smoothing = s
}

// SetAdaptiveSlope sets the adaptive slope as a percentage of the pending
// delta added to the allowed change. The percentage is converted to an
// internal base-128 gain, rounded: gain = (slope*128 + 50) / 100. A slope of
// 0 disables adaptive widening entirely.
func (l *Limiter) SetAdaptiveSlope(slopePercent int) {
	l.adaptiveGain = (slopePercent*slopeScale + 50) / 100
}

// Smoothing returns the current EMA smoothing code.
func (l *Limiter) Smoothing() Smoothing { return l.smoothing }

// RateLimit returns the base per-sample rate limit.
func (l *Limiter) RateLimit() int { return l.rateLimit }

// HysteresisBand returns the deadband radius.
func (l *Limiter) HysteresisBand() int { return l.hysteresisBand }

// Seeded reports whether the limiter has processed its first sample since
// construction or the last Reset.
func (l *Limiter) Seeded() bool { return !l.firstCall }

// Last returns the last emitted output sample (0 while unseeded).
func (l *Limiter) Last() int { return l.lastValue }

// EMA returns the current exponential moving average of the raw input
// (0 while unseeded). The EMA gauges signal deviation for adaptive mode;
// it is not the limiter output.
func (l *Limiter) EMA() int { return l.emaValue }

// Reset discards all learned state. The next ProcessSample call re-seeds
// the limiter from its input, exactly as after construction.
func (l *Limiter) Reset() {
	l.firstCall = true
	l.lastValue = 0
	l.emaValue = 0
}

// updateEMA advances the exponential moving average by one sample.
//
// Conceptually EMA' = EMA + (v-EMA)/2^k, computed in shift-based fixed point
// with emaShift bits of internal precision:
//
//	((v << k) + (EMA << emaShift) - (EMA << k)) >> emaShift
//
// Go's arithmetic right shift preserves sign, so the recurrence holds for
// negative deviations as well.
func updateEMA(value, currentEMA int, s Smoothing) int {
	k := uint(s)
	return ((value << k) + (currentEMA << emaShift) - (currentEMA << k)) >> emaShift
}

func intAbs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
