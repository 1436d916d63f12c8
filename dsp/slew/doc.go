// Package slew provides integer slew-rate limiting for control loops,
// actuator drivers, and sensor smoothing.
//
// A [Limiter] bounds how fast a scalar signal may change between successive
// samples. Three mechanisms combine into a single per-sample update:
//
//   - Fixed rate limiting: a constant maximum change is allowed between
//     successive output values.
//   - Adaptive rate limiting: the allowed change grows in proportion to the
//     magnitude of the pending change, improving responsiveness to large
//     steps while keeping small fluctuations tightly bounded.
//   - Hysteresis: residual gaps within a configurable deadband are closed
//     immediately instead of being crept toward over multiple samples,
//     suppressing noise-driven chatter around the target.
//
// An exponential moving average of the raw input is maintained alongside the
// output as a deviation gauge for adaptive operation.
//
// All arithmetic is integer-only with shift-based fixed-point scaling, so the
// package is suitable for low-resource targets without an FPU. The limiter is
// mono and not thread-safe — instantiate one limiter per signal channel and
// serialize access externally.
package slew
