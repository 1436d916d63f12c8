// Package step characterizes the step response of a slew-rate limiter
// configuration: how many samples a step takes to settle, the largest
// per-sample output change along the way, and whether the approach to the
// target is monotonic.
//
// For a fixed-mode limiter with rate limit R and no hysteresis, a step of
// magnitude D settles in exactly ceil(D/R) samples; adaptive widening and
// hysteresis shorten this. The analyzer measures the actual trajectory, so
// it also exposes the behavior of pathological configurations (zero or
// negative rate limits) that never settle.
package step
